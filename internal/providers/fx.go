package providers

import (
	"github.com/uniguide/uniguide/internal/providers/email"
	"github.com/uniguide/uniguide/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	email.Module,
	pdf.Module,
)
