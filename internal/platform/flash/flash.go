package flash

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"

	"pet-adoption/internal/platform/respond"
)

// SessionName es la cookie donde viajan los mensajes de confirmación.
const SessionName = "petadopt-messages"

// Store guarda mensajes "flash" (confirmaciones para el usuario) en una
// cookie firmada. Se consumen una sola vez.
type Store struct {
	cookies *sessions.CookieStore
}

type Options struct {
	// Secret se hashea con SHA-256 para derivar la key de 32 bytes.
	Secret string
	Secure bool
}

func New(opts Options) *Store {
	key := sha256.Sum256([]byte(opts.Secret))

	cs := sessions.NewCookieStore(key[:])
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs}
}

// Add encola un mensaje. Debe llamarse antes de escribir el body.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, msg string) error {
	sess, err := s.cookies.Get(r, SessionName)
	if err != nil && sess == nil {
		return err
	}
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// Pop devuelve y borra los mensajes pendientes.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) ([]string, error) {
	sess, err := s.cookies.Get(r, SessionName)
	if err != nil && sess == nil {
		return nil, err
	}
	raw := sess.Flashes()
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(string); ok {
			out = append(out, m)
		}
	}
	if len(raw) > 0 {
		if err := sess.Save(r, w); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type messagesResponse struct {
	Messages []string `json:"messages"`
}

// MessagesHandler devuelve y consume los mensajes pendientes del usuario.
func (s *Store) MessagesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := s.Pop(w, r)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, messagesResponse{Messages: msgs})
	}
}
