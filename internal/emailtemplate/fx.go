package emailtemplate

import (
	"go.uber.org/fx"

	"github.com/kyberbiz/kyberbiz/internal/emailtemplate/repository"
	"github.com/kyberbiz/kyberbiz/internal/emailtemplate/service"
)

var Module = fx.Module("emailtemplate.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
