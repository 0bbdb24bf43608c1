package payment

import (
	"github.com/craftshop/backoffice/internal/payment/repository"
	"github.com/craftshop/backoffice/internal/payment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
