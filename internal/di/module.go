package di

import (
	"go.uber.org/fx"

	"github.com/yappari/coffeebar-admin/internal/adapter/orderstore"
	"github.com/yappari/coffeebar-admin/internal/app"
	"github.com/yappari/coffeebar-admin/internal/config"
	"github.com/yappari/coffeebar-admin/internal/logger"
	"github.com/yappari/coffeebar-admin/internal/server/http/handlers"
	"github.com/yappari/coffeebar-admin/internal/server/http/router"
	"github.com/yappari/coffeebar-admin/internal/storage/postgres"
	"github.com/yappari/coffeebar-admin/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		orderstore.Module,
		usecase.Module,
		fx.Provide(
			func(client orderstore.Client) usecase.OrderGateway { return client },
			func(client orderstore.Client) usecase.HistoryGateway { return client },
			func(client orderstore.Client) usecase.FeedbackGateway { return client },
			func(facade *app.AdminFacade) handlers.AdminFacade { return facade },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
