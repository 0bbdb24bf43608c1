package order

import (
	"github.com/craftshop/backoffice/internal/order/repository"
	"github.com/craftshop/backoffice/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
