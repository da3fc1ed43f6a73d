package inventory

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Display renders command results. The shell wires a table renderer over
// stdout; tests substitute a recorder.
type Display interface {
	// Table renders tabular rows under the given column headers.
	Table(headers []string, rows [][]any)
	// Print writes one line of plain output.
	Print(msg string)
}

// History receives every accepted command line. Lines are recorded before
// dispatch, so commands that later fail recoverably are still logged.
type History interface {
	Append(line string) error
}

// Command format strings shown in usage messages.
const (
	addProductFormat     = `    ADD PRODUCT "PRODUCT NAME" SKU`
	addWarehouseFormat   = `    ADD WAREHOUSE WAREHOUSE# [STOCK_LIMIT]`
	stockFormat          = `    STOCK SKU WAREHOUSE# QTY`
	unstockFormat        = `    UNSTOCK SKU WAREHOUSE# QTY`
	listProductsFormat   = `    LIST PRODUCTS`
	listWarehousesFormat = `    LIST WAREHOUSES`
	listWarehouseFormat  = `    LIST WAREHOUSE WAREHOUSE#*`
)

var allFormats = []string{
	addProductFormat, addWarehouseFormat, stockFormat, unstockFormat,
	listProductsFormat, listWarehousesFormat, listWarehouseFormat,
}

// Dispatcher parses raw command lines and routes them to the Service.
type Dispatcher struct {
	svc     *Service
	display Display
	history History
	log     *zap.Logger
}

// NewDispatcher creates a Dispatcher. history may be nil to disable
// command-history logging.
func NewDispatcher(svc *Service, display Display, history History, log *zap.Logger) *Dispatcher {
	return &Dispatcher{svc: svc, display: display, history: history, log: log}
}

// Handle runs one raw input line. Recoverable problems are rendered to the
// display and return nil; a non-nil return is a fatal storage fault and the
// caller should stop the loop.
func (d *Dispatcher) Handle(ctx context.Context, line string) error {
	args := Tokenize(line)
	if len(args) == 0 {
		d.usage("Invalid command, commands available are:", allFormats)
		return nil
	}

	d.record(line)

	switch strings.ToLower(args[0]) {
	case "add":
		return d.handleAdd(ctx, args)
	case "stock":
		if len(args) < 4 {
			d.usage("Invalid argument, similar commands are:", []string{stockFormat})
			return nil
		}
		number, qty, ferr := parseMove(VerbStocking, args[2], args[3])
		if ferr != nil {
			return d.report(ferr)
		}
		return d.report(d.svc.Stock(ctx, args[1], number, qty))
	case "unstock":
		if len(args) < 4 {
			d.usage("Invalid argument, similar commands are:", []string{unstockFormat})
			return nil
		}
		number, qty, ferr := parseMove(VerbUnstocking, args[2], args[3])
		if ferr != nil {
			return d.report(ferr)
		}
		return d.report(d.svc.Unstock(ctx, args[1], number, qty))
	case "list":
		return d.handleList(ctx, args)
	default:
		d.usage("Invalid command, commands available are:", allFormats)
		return nil
	}
}

func (d *Dispatcher) handleAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		d.usage("Invalid command, similar commands are:",
			[]string{addProductFormat, addWarehouseFormat})
		return nil
	}
	switch strings.ToLower(args[1]) {
	case "product":
		if len(args) < 4 {
			d.usage("Invalid argument, the command format is:", []string{addProductFormat})
			return nil
		}
		return d.report(d.svc.AddProduct(ctx, args[2], args[3]))
	case "warehouse":
		if len(args) < 3 {
			d.usage("Invalid argument, the command format is:", []string{addWarehouseFormat})
			return nil
		}
		number, err := strconv.Atoi(args[2])
		if err != nil {
			return d.report(notInteger(VerbAdding, FieldWarehouseNum, args[2]))
		}
		var limit *int
		if len(args) > 3 {
			l, err := strconv.Atoi(args[3])
			if err != nil {
				return d.report(notInteger(VerbAdding, FieldStockLimit, args[3]))
			}
			limit = &l
		}
		return d.report(d.svc.AddWarehouse(ctx, number, limit))
	default:
		d.usage("Invalid command, commands available are:", allFormats)
		return nil
	}
}

func (d *Dispatcher) handleList(ctx context.Context, args []string) error {
	if len(args) < 2 {
		d.usage("Invalid command, similar commands are:",
			[]string{listProductsFormat, listWarehouseFormat, listWarehousesFormat})
		return nil
	}
	switch strings.ToLower(args[1]) {
	case "products":
		products, err := d.svc.ListProducts(ctx)
		if err != nil {
			return d.report(err)
		}
		rows := make([][]any, 0, len(products))
		for _, p := range products {
			rows = append(rows, []any{p.SKU, p.Name})
		}
		d.display.Table([]string{"SKU", "product_name"}, rows)
		return nil
	case "warehouses":
		warehouses, err := d.svc.ListWarehouses(ctx)
		if err != nil {
			return d.report(err)
		}
		rows := make([][]any, 0, len(warehouses))
		for _, w := range warehouses {
			rows = append(rows, []any{w.Number, w.LimitQty})
		}
		d.display.Table([]string{"warehouse_num", "limit_qty"}, rows)
		return nil
	case "warehouse":
		if len(args) < 3 {
			d.usage("Invalid argument, the command format is:", []string{listWarehouseFormat})
			return nil
		}
		number, err := strconv.Atoi(args[2])
		if err != nil {
			return d.report(notInteger(VerbListing, FieldWarehouseNum, args[2]))
		}
		stock, err := d.svc.ListWarehouse(ctx, number)
		if err != nil {
			return d.report(err)
		}
		rows := make([][]any, 0, len(stock))
		for _, s := range stock {
			rows = append(rows, []any{s.SKU, s.ProductName, s.Qty})
		}
		d.display.Table([]string{"SKU", "product_name", "qty"}, rows)
		return nil
	default:
		d.usage("Invalid command, commands available are:", allFormats)
		return nil
	}
}

// parseMove validates the WAREHOUSE# and QTY arguments of STOCK/UNSTOCK,
// in that order, so the first bad argument decides the message.
func parseMove(verb, rawNumber, rawQty string) (number, qty int, ferr *Failure) {
	number, err := strconv.Atoi(rawNumber)
	if err != nil {
		return 0, 0, notInteger(verb, FieldWarehouseNum, rawNumber)
	}
	qty, err = strconv.Atoi(rawQty)
	if err != nil {
		return 0, 0, notInteger(verb, FieldQty, rawQty)
	}
	return number, qty, nil
}

// report renders a recoverable failure and swallows it; anything else
// passes through as fatal.
func (d *Dispatcher) report(err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		d.display.Print(f.Error())
		return nil
	}
	return err
}

func (d *Dispatcher) usage(msg string, formats []string) {
	d.display.Print(msg + "\n")
	for _, f := range formats {
		d.display.Print(f)
	}
	d.display.Print("")
}

func (d *Dispatcher) record(line string) {
	if d.history == nil {
		return
	}
	if err := d.history.Append(line); err != nil {
		// History is a side channel; a write failure never blocks commands.
		d.log.Warn("history append failed", zap.Error(err))
	}
}
