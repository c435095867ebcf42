package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ardi-the-water/denj/internal/cli/formatter"
	"github.com/ardi-the-water/denj/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// formatFlag is the accepted set of tabular export formats.
type formatFlag string

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(v string) error {
	switch v {
	case "csv", "xlsx":
		*f = formatFlag(v)
		return nil
	}
	return fmt.Errorf("unsupported format %q (expected csv or xlsx)", v)
}

func (f *formatFlag) Type() string { return "format" }

func newInvoiceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Manage committed invoices",
	}

	cmd.AddCommand(
		newInvoiceListCmd(app),
		newInvoiceShowCmd(app),
		newInvoiceReceiptCmd(app),
		newInvoiceDeleteCmd(app),
		newInvoiceClearCmd(app),
		newInvoiceExportCmd(app),
		newInvoiceBackupCmd(app),
		newInvoiceRestoreCmd(app),
	)

	return cmd
}

func newInvoiceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List invoices, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInvoiceList(app.Invoices.List()))
			return nil
		},
	}
}

func newInvoiceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Invoices.GetByID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInvoiceDetail(inv))
			return nil
		},
	}
}

func newInvoiceReceiptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <id>",
		Short: "Print the customer receipt text for an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Invoices.GetByID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), export.Receipt(app.Settings.Get().CafeName, inv))
			return nil
		},
	}
}

func newInvoiceDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Invoices.GetByID(args[0])
			if err != nil {
				return err
			}
			ok, err := confirmDestructive(app, "حذف فاکتور #"+inv.ShortID(),
				"آیا از حذف این فاکتور مطمئن هستید؟")
			if err != nil || !ok {
				return err
			}
			if err := app.Invoices.Delete(cmd.Context(), inv.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "فاکتور #%s حذف شد.\n", inv.ShortID())
			return nil
		},
	}
}

func newInvoiceClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(app, "حذف تمام فاکتورها",
				"آیا از حذف تمام فاکتورها مطمئن هستید؟ این عمل غیرقابل بازگشت است.")
			if err != nil || !ok {
				return err
			}
			app.Invoices.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "تمام فاکتورها حذف شدند.")
			return nil
		},
	}
}

func newInvoiceExportCmd(app *App) *cobra.Command {
	fileFormat := formatFlag("csv")
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export invoice summaries to a spreadsheet file",
		RunE: func(cmd *cobra.Command, args []string) error {
			invoices := app.Invoices.List()
			if len(invoices) == 0 {
				return fmt.Errorf("هیچ فاکتوری برای خروجی گرفتن وجود ندارد")
			}

			if outPath == "" {
				outPath = fmt.Sprintf("invoices_%s.%s", time.Now().Format("2006-01-02"), fileFormat)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			switch fileFormat {
			case "xlsx":
				err = export.WriteXLSX(f, invoices)
			default:
				err = export.WriteCSV(f, invoices)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "خروجی در %s ذخیره شد.\n", outPath)
			return nil
		},
	}

	cmd.Flags().Var(&fileFormat, "format", "Export format: csv or xlsx")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path")
	return cmd
}

func newInvoiceBackupCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a full JSON backup of all invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			invoices := app.Invoices.List()
			if len(invoices) == 0 {
				return fmt.Errorf("هیچ فاکتوری برای پشتیبان‌گیری وجود ندارد")
			}

			data, err := export.MarshalBackup(invoices)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = fmt.Sprintf("cafe_backup_%s.json", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("writing backup file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "فایل پشتیبان در %s ذخیره شد.\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path")
	return cmd
}

func newInvoiceRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all invoices with the contents of a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading backup file: %w", err)
			}
			restored, err := export.UnmarshalBackup(data)
			if err != nil {
				return err
			}

			ok, err := confirmDestructive(app, "بازیابی از فایل پشتیبان",
				"با این کار تمام فاکتورهای فعلی با اطلاعات فایل پشتیبان جایگزین خواهند شد. ادامه می‌دهید؟")
			if err != nil || !ok {
				return err
			}

			app.Invoices.ReplaceAll(cmd.Context(), restored)
			fmt.Fprintf(cmd.OutOrStdout(), "اطلاعات با موفقیت بازیابی شد (%d فاکتور).\n", len(restored))
			return nil
		},
	}
}
