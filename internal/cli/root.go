package cli

import (
	"github.com/ardi-the-water/denj/internal/menu"
	"github.com/ardi-the-water/denj/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Settings service.SettingsService
	Invoices service.InvoiceService
	Orders   service.OrderService
	Menu     *menu.Loader

	// IsInteractive reports whether stdin is an interactive terminal;
	// a bare "denj" launches the order screen only when it is.
	IsInteractive func() bool

	// AssumeYes skips confirmation gates for destructive operations.
	AssumeYes bool
}

// NewRootCmd creates the top-level "denj" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "denj",
		Short: "Café register: take orders, keep invoices, pull the menu from a published sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runOrderScreen(app)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVarP(&app.AssumeYes, "yes", "y", false, "Skip confirmation prompts")

	root.AddCommand(
		newOrderCmd(app),
		newInvoiceCmd(app),
		newMenuCmd(app),
		newSettingsCmd(app),
	)

	return root
}

// reloadMenu fetches the menu using the configured sheet URL. CLI
// invocations are fresh processes, so commands that need the menu
// fetch it on demand.
func reloadMenu(app *App, cmd *cobra.Command) error {
	ctx := cmd.Context()
	return app.Menu.Reload(ctx, app.Settings.Get().MenuURL)
}
