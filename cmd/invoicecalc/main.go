package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/invoicesystem/invoicesystem/internal/api/dto"
	"github.com/invoicesystem/invoicesystem/internal/domain/invoice"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.L.Fatalw("invoicecalc failed", "error", err)
	}
}

func newApp() *cli.App {
	fileFlag := &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "invoice JSON file, - for stdin",
		Required: true,
	}

	return &cli.App{
		Name:  "invoicecalc",
		Usage: "calculate and validate invoice documents",
		Commands: []*cli.Command{
			{
				Name:  "calculate",
				Usage: "print per-line and invoice totals",
				Flags: []cli.Flag{
					fileFlag,
					&cli.BoolFlag{Name: "json", Usage: "print the calculation as JSON"},
				},
				Action: calculate,
			},
			{
				Name:   "validate",
				Usage:  "print validation errors, exit 1 when the invoice is invalid",
				Flags:  []cli.Flag{fileFlag},
				Action: validate,
			},
		},
	}
}

func calculate(c *cli.Context) error {
	req, err := readInvoice(c)
	if err != nil {
		return err
	}
	calc := dto.NewInvoiceCalculationResponse(invoice.New(&req.DTO))

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(calc)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tDescription\tQty\tUnit\tDiscount\tTax rate\tSubtotal\tTax\tTotal\t")
	for i, item := range calc.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			i+1,
			item.Description,
			item.Quantity.String(),
			item.UnitPrice.StringFixed(2),
			item.Discount.StringFixed(2),
			item.TaxRate.String(),
			item.Subtotal.StringFixed(2),
			item.TaxAmount.StringFixed(2),
			item.Total.StringFixed(2),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "\nSubtotal: %s %s\n", calc.Subtotal.StringFixed(2), calc.Currency)
	fmt.Fprintf(c.App.Writer, "Tax:      %s %s\n", calc.TaxTotal.StringFixed(2), calc.Currency)
	fmt.Fprintf(c.App.Writer, "Total:    %s %s\n", calc.Total.StringFixed(2), calc.Currency)
	return nil
}

func validate(c *cli.Context) error {
	req, err := readInvoice(c)
	if err != nil {
		return err
	}

	errs := invoice.New(&req.DTO).Validate()
	if len(errs) == 0 {
		fmt.Fprintln(c.App.Writer, "Invoice is valid.")
		return nil
	}

	for _, msg := range errs {
		fmt.Fprintln(c.App.Writer, msg)
	}
	return cli.Exit(fmt.Sprintf("%d validation error(s)", len(errs)), 1)
}

func readInvoice(c *cli.Context) (*dto.CalculateInvoiceRequest, error) {
	path := c.String("file")

	var r io.Reader = c.App.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Could not open %s", path).
				Mark(ierr.ErrNotFound)
		}
		defer f.Close()
		r = f
	}

	var req dto.CalculateInvoiceRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invoice file is not valid JSON").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}
