package quote

import (
	"go.uber.org/fx"

	"github.com/kyberbiz/kyberbiz/internal/quote/repository"
	"github.com/kyberbiz/kyberbiz/internal/quote/service"
)

var Module = fx.Module("quote.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
