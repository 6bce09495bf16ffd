package auth

import "go.uber.org/fx"

// Module provides authentication primitives via fx.
var Module = fx.Provide(newTokenVerifier)

func newTokenVerifier() TokenVerifier {
	return NewBcryptVerifier(0)
}
