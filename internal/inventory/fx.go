package inventory

import (
	"github.com/craftshop/backoffice/internal/inventory/repository"
	"github.com/craftshop/backoffice/internal/inventory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
