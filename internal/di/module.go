package di

import (
	"go.uber.org/fx"

	"github.com/plateup/orderflow/internal/adapter/notify"
	"github.com/plateup/orderflow/internal/app"
	"github.com/plateup/orderflow/internal/config"
	"github.com/plateup/orderflow/internal/logger"
	"github.com/plateup/orderflow/internal/pkg/auth"
	"github.com/plateup/orderflow/internal/server/http/handlers"
	"github.com/plateup/orderflow/internal/server/http/router"
	"github.com/plateup/orderflow/internal/storage/postgres"
	"github.com/plateup/orderflow/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(f *app.PlatformFacade) handlers.PlatformFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
