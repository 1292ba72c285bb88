package profiles

import "context"

type Repository interface {
	// GetOrCreate devuelve el perfil del usuario, creándolo con p si no existe.
	GetOrCreate(ctx context.Context, p Profile) (Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	Update(ctx context.Context, p Profile) error
	List(ctx context.Context) ([]Profile, error)
}
