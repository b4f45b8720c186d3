package report

import (
	"go.uber.org/fx"

	"github.com/kyberbiz/kyberbiz/internal/report/repository"
	"github.com/kyberbiz/kyberbiz/internal/report/service"
)

var Module = fx.Module("report.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
