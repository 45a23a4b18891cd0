package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
// Puede ser nil en modo dev: el middleware acepta X-Debug-User-ID.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
