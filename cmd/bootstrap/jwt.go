package bootstrap

import (
	"github.com/steven-the-qa/coach-wire/internal/pkg/config"
	"github.com/steven-the-qa/coach-wire/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTVerifier,
	),
)

func NewJWTVerifier(cfg config.Config) *jwt.Verifier {
	return jwt.NewVerifier(cfg.JWT.Secret)
}
