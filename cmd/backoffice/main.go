package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/config"
	"github.com/craftshop/backoffice/internal/customer"
	"github.com/craftshop/backoffice/internal/export"
	"github.com/craftshop/backoffice/internal/inventory"
	"github.com/craftshop/backoffice/internal/invoice"
	"github.com/craftshop/backoffice/internal/migration"
	"github.com/craftshop/backoffice/internal/observability"
	"github.com/craftshop/backoffice/internal/order"
	"github.com/craftshop/backoffice/internal/payment"
	"github.com/craftshop/backoffice/internal/server"
	"github.com/craftshop/backoffice/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		// Functional domains
		customer.Module,
		inventory.Module,
		order.Module,
		payment.Module,
		invoice.Module,
		export.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
