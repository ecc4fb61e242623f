// Package cli provides the command-line interface for clientbook.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/clientbook/clientbook/config"
	"github.com/clientbook/clientbook/internal/app"
	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/internal/printer"
)

const shutdownTimeout = 10 * time.Second

// AppFactory builds the application a command runs against
type AppFactory func(cfg *config.Config) app.AppInterface

// Option configures the root command
type Option func(*runner)

// WithAppFactory replaces the default application constructor
func WithAppFactory(factory AppFactory) Option {
	return func(r *runner) {
		r.newApp = factory
	}
}

type runner struct {
	envFile string
	output  string

	cfg    *config.Config
	format printer.Format
	newApp AppFactory
}

// NewRootCmd creates and returns the root command.
// Without a subcommand it runs the demonstration scenario.
func NewRootCmd(opts ...Option) *cobra.Command {
	r := &runner{
		newApp: func(cfg *config.Config) app.AppInterface {
			return app.NewApp(cfg)
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	rootCmd := &cobra.Command{
		Use:   "clientbook",
		Short: "clientbook - client and phone records in PostgreSQL",
		Long: `clientbook keeps client records and their phone numbers in PostgreSQL.

Run without a command to execute the demonstration scenario: create a client,
add a phone, rename the client, delete the phone, delete the client, and
search for it by first name.`,
		Version:       config.VERSION,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadWithOptions(config.LoadOptions{EnvFile: r.envFile})
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			r.cfg = cfg

			format, err := printer.ParseFormat(r.output)
			if err != nil {
				return err
			}
			r.format = format

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, r.runDemo)
		},
	}

	rootCmd.PersistentFlags().StringVar(&r.envFile, "env-file", ".env", "environment file to load from the working directory")
	rootCmd.PersistentFlags().StringVarP(&r.output, "output", "o", string(printer.FormatText), "listing format: text, table or json")

	rootCmd.AddCommand(
		r.newInitCmd(),
		r.newResetCmd(),
		r.newCreateCmd(),
		r.newAddPhoneCmd(),
		r.newUpdateCmd(),
		r.newDeletePhoneCmd(),
		r.newDeleteCmd(),
		r.newGetCmd(),
		r.newFindCmd(),
		r.newListCmd(),
		r.newDemoCmd(),
	)

	return rootCmd
}

// Execute runs the root command, cancelling in-flight queries when ctx is done
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// withApp initializes the application, runs fn against its client service and shuts it down
func (r *runner) withApp(cmd *cobra.Command, fn func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error) error {
	a := r.newApp(r.cfg)
	if err := a.Initialize(); err != nil {
		shutdown(a)
		return err
	}
	defer shutdown(a)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := fn(ctx, cmd, a.GetClientService()); err != nil {
		// main reports every error on stderr; only failures worth investigating are logged too
		if !domain.IsExpected(err) {
			a.GetLogger().WithField("command", cmd.CommandPath()).Error(err.Error())
		}
		return err
	}
	return nil
}

func shutdown(a app.AppInterface) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Shutdown(ctx); err != nil {
		a.GetLogger().Error(fmt.Sprintf("Failed to shut down: %v", err))
	}
}

func (r *runner) printClients(cmd *cobra.Command, clients []*domain.Client) error {
	return printer.PrintClients(cmd.OutOrStdout(), clients, r.format)
}

func parseClientID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(fmt.Sprintf("invalid client id: %q", value))
	}
	return id, domain.ValidateClientID(id)
}
