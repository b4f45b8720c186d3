package pdf

import "go.uber.org/fx"

var Module = fx.Module("document.pdf",
	fx.Provide(NewWriter),
)
