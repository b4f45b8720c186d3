package expense

import (
	"go.uber.org/fx"

	"github.com/kyberbiz/kyberbiz/internal/expense/repository"
	"github.com/kyberbiz/kyberbiz/internal/expense/service"
)

var Module = fx.Module("expense.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
