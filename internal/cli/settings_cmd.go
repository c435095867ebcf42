package cli

import (
	"fmt"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change café settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Settings.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "نام کافه: %s\n", s.CafeName)
			fmt.Fprintf(cmd.OutOrStdout(), "لینک منو: %s\n", s.MenuURL)
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var name, menuURL string
	var clearMenuURL bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings; unset flags keep their current value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearMenuURL && menuURL != "" {
				return fmt.Errorf("--menu-url and --clear-menu-url are mutually exclusive")
			}
			updated := app.Settings.Update(cmd.Context(), domain.AppSettings{
				CafeName: name,
				MenuURL:  menuURL,
			})
			if clearMenuURL {
				updated = app.Settings.ClearMenuURL(cmd.Context())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "تنظیمات ذخیره شد.")
			fmt.Fprintf(cmd.OutOrStdout(), "نام کافه: %s\n", updated.CafeName)
			fmt.Fprintf(cmd.OutOrStdout(), "لینک منو: %s\n", updated.MenuURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Café name shown on receipts")
	cmd.Flags().StringVar(&menuURL, "menu-url", "", "Published CSV URL of the menu sheet")
	cmd.Flags().BoolVar(&clearMenuURL, "clear-menu-url", false, "Remove the menu source URL")
	return cmd
}
