package migration

import (
	"github.com/bwmarrin/snowflake"
	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
	carouseldomain "github.com/uniguide/uniguide/internal/carousel/domain"
	"github.com/uniguide/uniguide/internal/config"
	feedbackdomain "github.com/uniguide/uniguide/internal/feedback/domain"
	guidedomain "github.com/uniguide/uniguide/internal/guide/domain"
	"github.com/uniguide/uniguide/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, genID *snowflake.Node) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// Non-postgres deployments (sqlite dev, mysql) rely on AutoMigrate.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&guidedomain.Service{},
				&guidedomain.Step{},
				&carouseldomain.Image{},
				&feedbackdomain.Feedback{},
			); err != nil {
				return err
			}
		}

		return seed.EnsureDefaultAdmin(conn, genID)
	}),
)
