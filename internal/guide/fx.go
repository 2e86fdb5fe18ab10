package guide

import (
	"github.com/uniguide/uniguide/internal/guide/repository"
	"github.com/uniguide/uniguide/internal/guide/service"
	"go.uber.org/fx"
)

var Module = fx.Module("guide.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
