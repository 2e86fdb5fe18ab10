package feedback

import (
	"github.com/uniguide/uniguide/internal/feedback/repository"
	"github.com/uniguide/uniguide/internal/feedback/service"
	"go.uber.org/fx"
)

var Module = fx.Module("feedback.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
