package migration

import (
	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/config"
	"github.com/craftshop/backoffice/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node) error {
		if err := RunMigrations(conn); err != nil {
			return err
		}

		if cfg.Debug() {
			return seed.EnsureSampleCatalog(conn, node)
		}
		return nil
	}),
)
