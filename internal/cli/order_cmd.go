package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ardi-the-water/denj/internal/cli/formatter"
	"github.com/ardi-the-water/denj/internal/service"
	"github.com/spf13/cobra"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Build and commit the current order",
	}

	cmd.AddCommand(
		newOrderAddCmd(app),
		newOrderQtyCmd(app),
		newOrderDiscountCmd(app),
		newOrderShowCmd(app),
		newOrderCommitCmd(app),
		newOrderCancelCmd(app),
		newOrderEditCmd(app),
	)

	return cmd
}

func newOrderAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <item name>",
		Short: "Add a menu item to the order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := reloadMenu(app, cmd); err != nil {
				return err
			}
			name := args[0]
			for _, it := range app.Menu.Items() {
				if it.Name == name {
					app.Orders.AddItem(cmd.Context(), it)
					fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDraft(app.Orders.Draft()))
					return nil
				}
			}
			return fmt.Errorf("item %q is not on the menu", name)
		},
	}
}

func newOrderQtyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "qty <item name> <quantity>",
		Short: "Set the quantity of an order line (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}
			app.Orders.SetQuantity(cmd.Context(), args[0], quantity)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDraft(app.Orders.Draft()))
			return nil
		},
	}
}

func newOrderDiscountCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "discount <amount>",
		Short: "Set the flat discount in toman",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			app.Orders.SetDiscount(cmd.Context(), amount)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDraft(app.Orders.Draft()))
			return nil
		},
	}
}

func newOrderShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current order",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDraft(app.Orders.Draft()))
			return nil
		},
	}
}

func newOrderCommitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Commit the order as an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Orders.Commit(cmd.Context())
			if errors.Is(err, service.ErrEmptyDraft) {
				return fmt.Errorf("سبد خرید خالی است")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "فاکتور #%s ثبت شد.\n\n", inv.ShortID())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInvoiceDetail(inv))
			return nil
		},
	}
}

func newOrderCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Discard the current order",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Orders.Cancel(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "سفارش لغو شد.")
			return nil
		},
	}
}

func newOrderEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <invoice id>",
		Short: "Load an existing invoice into the order for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Orders.BeginEdit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ویرایش فاکتور #%s آغاز شد.\n\n", inv.ShortID())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDraft(app.Orders.Draft()))
			return nil
		},
	}
}
