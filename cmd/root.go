package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/account"
	"github.com/thenoetrevino/dressdash/internal/cli/exports"
	"github.com/thenoetrevino/dressdash/internal/cli/report"
	"github.com/thenoetrevino/dressdash/internal/cli/settings"
	"github.com/thenoetrevino/dressdash/internal/cli/store"
	"github.com/thenoetrevino/dressdash/internal/cli/styles"
	"github.com/thenoetrevino/dressdash/internal/config"
	"github.com/thenoetrevino/dressdash/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "dressdash",
	Short: "Dressdash - admin dashboard for the clothing bot",
	Long: `Dressdash is a terminal dashboard for the WhatsApp clothing bot: stores,
jobs, money and settings in one place.

Run without a command to open the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			// Fallback to default colors if config fails to load
			cfg = config.Default()
		}
		styles.Init(cfg.ColorScheme)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Message: err.Error()}
	})

	rootCmd.AddCommand(account.LoginCmd())
	rootCmd.AddCommand(account.LogoutCmd())
	rootCmd.AddCommand(account.WhoamiCmd())
	rootCmd.AddCommand(report.KPICmd())
	rootCmd.AddCommand(exports.ExportCmd())
	rootCmd.AddCommand(store.StoreCmd())
	rootCmd.AddCommand(settings.SettingsCmd())
}

// Execute runs the command line and returns the error of the command that ran
func Execute() error {
	return rootCmd.Execute()
}
