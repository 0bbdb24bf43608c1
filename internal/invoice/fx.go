package invoice

import (
	"github.com/craftshop/backoffice/internal/invoice/render"
	"github.com/craftshop/backoffice/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewHTML),
	fx.Provide(render.NewPDF),
	fx.Provide(service.New),
)
