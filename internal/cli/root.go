// Package cli implements the schedctl commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"school-schedule/internal/auth"
	"school-schedule/internal/config"
	"school-schedule/internal/lock"
	"school-schedule/internal/service"
	"school-schedule/internal/storage"
	"school-schedule/internal/storage/sqlstore"
	"school-schedule/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "schedctl",
	Short: "Inspect and administer school schedule configurations",
	Long:  "schedctl previews time grids, checks schedule snapshots and seeds schools and courses in the configured database.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var out io.Writer = io.Discard
		if verbose {
			out = os.Stderr
		}
		slog.SetDefault(logger.Setup(logger.EnvLocal, out))
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $CONFIG_PATH or ./config/local.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")
}

func loadConfig() (*config.Config, error) {
	return config.Load(config.Path(configPath))
}

func openStore() (*sqlstore.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return storage.Open(cfg.Storage.Driver, cfg.Storage.DSN)
}

// adminContext runs service calls as a local administrator.
func adminContext(ctx context.Context) context.Context {
	return auth.WithPrincipal(ctx, auth.Principal{UserID: "schedctl", Roles: []string{auth.RoleAdmin}})
}

func newService(store service.Store) *service.Service {
	return service.NewService(store, lock.Nop{}, slog.Default())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
