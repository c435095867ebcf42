package cli

import (
	"fmt"

	"github.com/ardi-the-water/denj/internal/cli/formatter"
	"github.com/ardi-the-water/denj/internal/menu"
	"github.com/spf13/cobra"
)

func newMenuCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show or reload the café menu",
	}

	cmd.AddCommand(
		newMenuShowCmd(app),
		newMenuReloadCmd(app),
	)

	return cmd
}

func newMenuShowCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch and show the menu grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := reloadMenu(app, cmd); err != nil {
				return err
			}
			items := menu.Filter(app.Menu.Items(), search)
			if search != "" && len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "آیتمی با این نام یافت نشد.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMenu(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter items by name")
	return cmd
}

func newMenuReloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Fetch the menu and report what was loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := reloadMenu(app, cmd); err != nil {
				return err
			}
			items := app.Menu.Items()
			categories := menu.SortedCategories(items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d آیتم در %d دسته بارگذاری شد.\n", len(items), len(categories))
			return nil
		},
	}
}
