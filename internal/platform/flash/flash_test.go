package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddThenPop_ConsumesOnce(t *testing.T) {
	s := New(Options{Secret: "test-secret"})

	// 1) Add
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, s.Add(rec, req, "Adoption request for Milo has been approved!"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// 2) Pop con la cookie
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	msgs, err := s.Pop(rec2, req2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adoption request for Milo has been approved!"}, msgs)

	// 3) La cookie nueva ya no trae mensajes
	rec3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec2.Result().Cookies() {
		req3.AddCookie(c)
	}
	msgs, err = s.Pop(rec3, req3)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestStore_Pop_WithoutCookie(t *testing.T) {
	s := New(Options{Secret: "test-secret"})

	msgs, err := s.Pop(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestStore_MessagesHandler(t *testing.T) {
	s := New(Options{Secret: "test-secret"})

	rec := httptest.NewRecorder()
	require.NoError(t, s.Add(rec, httptest.NewRequest(http.MethodPost, "/", nil), "hola"))

	req := httptest.NewRequest(http.MethodGet, "/me/messages", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	s.MessagesHandler()(rec2, req)

	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.JSONEq(t, `{"messages":["hola"]}`, rec2.Body.String())
}
