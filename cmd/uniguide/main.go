package main

import (
	"hash/fnv"
	"os"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/uniguide/uniguide/internal/config"
	"github.com/uniguide/uniguide/internal/migration"
	"github.com/uniguide/uniguide/internal/observability"
	"github.com/uniguide/uniguide/internal/server"
	"github.com/uniguide/uniguide/pkg/cache"
	"github.com/uniguide/uniguide/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		cache.Module,
		migration.Module,
		server.Module,
	)

	app.Run()
}

// registerSnowflake derives a stable node id from the hostname so
// replicas do not mint colliding ids.
func registerSnowflake() (*snowflake.Node, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "uniguide"
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(hostname))
	nodeID := int64(h.Sum32() % 1024)

	return snowflake.NewNode(nodeID)
}
