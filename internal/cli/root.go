package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GoArmGo/photopager/internal/app"
	"github.com/GoArmGo/photopager/internal/di"
)

// Runner запускает приложение в заданном режиме. В тестах подменяется.
type Runner func(ctx context.Context, mode string) error

// Migrator применяет миграции. В тестах подменяется.
type Migrator func(ctx context.Context) error

// RunApp собирает зависимости через di и запускает App.
func RunApp(ctx context.Context, mode string) error {
	application, err := di.BuildApp(ctx)
	if err != nil {
		return err
	}
	return application.Run(ctx, mode)
}

// NewRootCmd создаёт корневую команду photopager.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(RunApp, di.Migrate)
}

// NewRootCmdWith создаёт корневую команду с явными зависимостями.
func NewRootCmdWith(run Runner, migrate Migrator) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "photopager",
		Short:         "Paginated photo browser",
		Long:          "photopager: server-rendered paginated photo browser with search and an optional Postgres mirror",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newModeCmd(app.ModeServer, "Run the HTTP server", run),
		newModeCmd(app.ModeWorker, "Consume sync requests from RabbitMQ", run),
		newModeCmd(app.ModeSync, "Sync the mirror once without the broker", run),
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrate(cmd.Context())
			},
		},
	)
	return cmd
}

func newModeCmd(mode, short string, run Runner) *cobra.Command {
	return &cobra.Command{
		Use:   mode,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), mode)
		},
	}
}
