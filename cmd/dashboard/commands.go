package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/01moynul/stockdash/internal/dashboard"
)

type env struct {
	dash *dashboard.Dashboard
	ui   *consoleUI
	in   io.Reader
	out  io.Writer
}

type execFunc func(ctx context.Context, e *env) error

// commands maps a subcommand to a function that registers its flags and
// returns the code to run once they are parsed.
var commands = map[string]func(fs *flag.FlagSet) execFunc{
	"status":    statusCmd,
	"sale":      saleCmd,
	"threshold": thresholdCmd,
	"forecast":  forecastCmd,
	"charts":    chartsCmd,
	"add":       addCmd,
	"delete":    deleteCmd,
	"supplier":  supplierCmd,
	"recommend": recommendCmd,
	"restock":   restockCmd,
}

func statusCmd(*flag.FlagSet) execFunc {
	return func(ctx context.Context, e *env) error {
		err := e.dash.Load(ctx)
		warnings := e.dash.Warnings()
		for i, item := range e.dash.Items() {
			mark := " "
			if i < len(warnings) && warnings[i].Visible {
				mark = "!"
			}
			fmt.Fprintf(e.out, "%s %4d  %-24s %6d\n", mark, item.ID, item.Name, item.Quantity)
		}
		return err
	}
}

func saleCmd(fs *flag.FlagSet) execFunc {
	barcode := fs.String("barcode", "", "Barcode of the sold product")
	name := fs.String("name", "", "Name of the sold product")
	amount := fs.String("amount", "", "Units sold")
	return func(ctx context.Context, e *env) error {
		return userError(e.dash.RecordSale(ctx, *barcode, *name, *amount))
	}
}

func thresholdCmd(fs *flag.FlagSet) execFunc {
	value := fs.String("value", "", "New stock warning level")
	return func(ctx context.Context, e *env) error {
		return userError(e.dash.SetThreshold(ctx, *value))
	}
}

func forecastCmd(*flag.FlagSet) execFunc {
	return func(ctx context.Context, e *env) error {
		return userError(e.dash.GetPrediction(ctx))
	}
}

func chartsCmd(fs *flag.FlagSet) execFunc {
	fs.String("out", "charts", "Directory for the chart config files")
	return func(ctx context.Context, e *env) error {
		err := e.dash.LoadCharts(ctx)
		for _, path := range e.ui.Written() {
			fmt.Fprintf(e.out, "wrote %s\n", path)
		}
		return err
	}
}

// itemList collects repeated -item flags.
type itemList []string

func (l *itemList) String() string { return strings.Join(*l, ", ") }

func (l *itemList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func addCmd(fs *flag.FlagSet) execFunc {
	var items itemList
	fs.Var(&items, "item", `Item as "barcode|name|quantity|expiry[|supplier|order_qty|restock_at]"; repeat for more rows`)
	return func(ctx context.Context, e *env) error {
		rows := e.dash.Rows
		for _, raw := range items {
			parts := strings.SplitN(raw, "|", 7)
			for len(parts) < 7 {
				parts = append(parts, "")
			}
			row := rows.AddRow()
			rows.SetName(row.ID, parts[1])
			rows.SetQuantity(row.ID, parts[2])
			rows.SetExpiry(row.ID, parts[3])
			rows.SetRestock(row.ID, parts[4], parts[5], parts[6])
			// A scanned barcode fills in the name when none was given.
			if parts[0] != "" {
				if err := rows.SetBarcode(ctx, row.ID, parts[0]); err != nil {
					return err
				}
				if parts[1] != "" {
					rows.SetName(row.ID, parts[1])
				}
			}
		}
		return userError(rows.Submit(ctx))
	}
}

func deleteCmd(fs *flag.FlagSet) execFunc {
	id := fs.Int64("id", 0, "Item id")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	return func(ctx context.Context, e *env) error {
		if *id <= 0 {
			return errors.New("delete: -id is required")
		}
		gate := e.dash.Gate
		gate.RequestDelete(*id)
		if !*yes && !confirmed(e.in) {
			gate.Cancel()
			fmt.Fprintln(e.out, "cancelled")
			return nil
		}
		return gate.Confirm(ctx)
	}
}

func confirmed(in io.Reader) bool {
	line, _ := bufio.NewReader(in).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func supplierCmd(fs *flag.FlagSet) execFunc {
	id := fs.Int64("id", 0, "Item id")
	supplier := fs.String("supplier", "", "Supplier name")
	qty := fs.String("qty", "", "Order quantity")
	return func(ctx context.Context, e *env) error {
		return userError(e.dash.UpdateSupplier(ctx, strconv.FormatInt(*id, 10), *supplier, *qty))
	}
}

func recommendCmd(fs *flag.FlagSet) execFunc {
	product := fs.String("product", "", "Product name")
	return func(ctx context.Context, e *env) error {
		_, err := e.dash.RecommendSupplier(ctx, *product)
		return userError(err)
	}
}

func restockCmd(*flag.FlagSet) execFunc {
	return func(ctx context.Context, e *env) error {
		res, err := e.dash.AutoRestock(ctx)
		if err != nil {
			return err
		}
		for _, o := range res.Orders {
			fmt.Fprintf(e.out, "  %d x %s from %s\n", o.OrderQuantity, o.Product, o.Supplier)
		}
		return nil
	}
}

// userError drops errors whose message the dashboard already showed.
func userError(err error) error {
	var verr *dashboard.ValidationError
	var serr *dashboard.ServerError
	if errors.As(err, &verr) || errors.As(err, &serr) {
		return errSilentFailure
	}
	return err
}

var errSilentFailure = errors.New("command failed")
