package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(minifyCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(prettyCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
