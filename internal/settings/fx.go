package settings

import (
	"go.uber.org/fx"

	"github.com/kyberbiz/kyberbiz/internal/settings/repository"
	"github.com/kyberbiz/kyberbiz/internal/settings/service"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
