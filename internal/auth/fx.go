package auth

import (
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/uniguide/uniguide/internal/auth/otp"
	"github.com/uniguide/uniguide/internal/auth/repository"
	"github.com/uniguide/uniguide/internal/auth/service"
	"github.com/uniguide/uniguide/internal/auth/token"
	"github.com/uniguide/uniguide/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(newIssuer),
	fx.Provide(newOTPStore),
	fx.Provide(otp.NewManager),
	fx.Provide(service.New),
)

func newIssuer(cfg config.Config) *token.Issuer {
	return token.NewIssuer(cfg.AuthJWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
}

func newOTPStore(client *redis.Client) otp.Store {
	if client == nil {
		return otp.NewMemoryStore()
	}
	return otp.NewRedisStore(client)
}
