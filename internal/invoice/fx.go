package invoice

import (
	"go.uber.org/fx"

	"github.com/kyberbiz/kyberbiz/internal/invoice/repository"
	"github.com/kyberbiz/kyberbiz/internal/invoice/service"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
