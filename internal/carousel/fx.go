package carousel

import (
	"github.com/uniguide/uniguide/internal/carousel/repository"
	"github.com/uniguide/uniguide/internal/carousel/service"
	"go.uber.org/fx"
)

var Module = fx.Module("carousel.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
