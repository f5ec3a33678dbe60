package orderstore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/yappari/coffeebar-admin/internal/config"
)

// Module exposes the order store client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.OrderStoreAddress, p.Config.OrderStoreTimeout, p.Logger)
}
