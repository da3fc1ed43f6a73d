package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inventory-manager/feature/inventory/mocks"
	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDisplay records everything the dispatcher renders.
type fakeDisplay struct {
	prints []string
	tables []renderedTable
}

type renderedTable struct {
	headers []string
	rows    [][]any
}

func (d *fakeDisplay) Table(headers []string, rows [][]any) {
	d.tables = append(d.tables, renderedTable{headers: headers, rows: rows})
}

func (d *fakeDisplay) Print(msg string) {
	d.prints = append(d.prints, msg)
}

// fakeHistory records appended lines.
type fakeHistory struct {
	lines []string
	err   error
}

func (h *fakeHistory) Append(line string) error {
	h.lines = append(h.lines, line)
	return h.err
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *mocks.Store, *fakeDisplay, *fakeHistory) {
	st := new(mocks.Store)
	display := &fakeDisplay{}
	hist := &fakeHistory{}
	svc := NewService(st, zap.NewNop())
	return NewDispatcher(svc, display, hist, zap.NewNop()), st, display, hist
}

func TestHandle_AddProduct(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)
	st.On("InsertProduct", mock.Anything, "Sonic the Hedgehog 2", "a1b2-c3d4").Return(nil)

	err := d.Handle(context.Background(), `ADD PRODUCT "Sonic the Hedgehog 2" a1b2-c3d4`)

	require.NoError(t, err)
	assert.Empty(t, display.prints, "success produces no output")
	st.AssertExpectations(t)
}

func TestHandle_CaseInsensitiveKeywords(t *testing.T) {
	d, st, _, _ := newTestDispatcher(t)
	st.On("InsertWarehouse", mock.Anything, 970, (*int)(nil)).Return(nil)

	require.NoError(t, d.Handle(context.Background(), "add warehouse 970"))
	st.AssertExpectations(t)
}

func TestHandle_AddWarehouseWithLimit(t *testing.T) {
	d, st, _, _ := newTestDispatcher(t)
	st.On("InsertWarehouse", mock.Anything, 5, mock.MatchedBy(func(l *int) bool {
		return l != nil && *l == 100
	})).Return(nil)

	require.NoError(t, d.Handle(context.Background(), "ADD WAREHOUSE 5 100"))
	st.AssertExpectations(t)
}

func TestHandle_WarehouseNumberNotInteger(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)

	err := d.Handle(context.Background(), "ADD WAREHOUSE abc")

	require.NoError(t, err)
	require.Len(t, display.prints, 1)
	assert.Equal(t, "ERROR ADDING WAREHOUSE with WAREHOUSE# abc\nWAREHOUSE# NOT INTEGER", display.prints[0])
	st.AssertNotCalled(t, "InsertWarehouse", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_StockLimitNotInteger(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)

	err := d.Handle(context.Background(), "ADD WAREHOUSE 970 lots")

	require.NoError(t, err)
	require.Len(t, display.prints, 1)
	assert.Equal(t, "ERROR ADDING WAREHOUSE with STOCK_LIMIT lots\nSTOCK_LIMIT NOT INTEGER", display.prints[0])
	st.AssertNotCalled(t, "InsertWarehouse", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_StockQtyNotInteger(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)

	err := d.Handle(context.Background(), "STOCK a1b2 970 many")

	require.NoError(t, err)
	require.Len(t, display.prints, 1)
	assert.Equal(t, "ERROR STOCKING WAREHOUSE with QTY many\nQTY NOT INTEGER", display.prints[0])
	st.AssertNotCalled(t, "WarehouseLimit", mock.Anything, mock.Anything)
}

func TestHandle_UnstockWarehouseNotInteger(t *testing.T) {
	d, _, display, _ := newTestDispatcher(t)

	require.NoError(t, d.Handle(context.Background(), "UNSTOCK a1b2 here 10"))
	require.Len(t, display.prints, 1)
	assert.Equal(t, "ERROR UNSTOCKING WAREHOUSE with WAREHOUSE# here\nWAREHOUSE# NOT INTEGER", display.prints[0])
}

func TestHandle_UnknownCommand(t *testing.T) {
	d, _, display, _ := newTestDispatcher(t)

	require.NoError(t, d.Handle(context.Background(), "FROB everything"))

	// Headline, seven formats, trailing blank line.
	require.Len(t, display.prints, 9)
	assert.Equal(t, "Invalid command, commands available are:\n", display.prints[0])
	assert.Equal(t, `    ADD PRODUCT "PRODUCT NAME" SKU`, display.prints[1])
	assert.Equal(t, "    LIST WAREHOUSE WAREHOUSE#*", display.prints[7])
	assert.Equal(t, "", display.prints[8])
}

func TestHandle_InsufficientArguments(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		headline string
		formats  int
	}{
		{"bare add", "ADD", "Invalid command, similar commands are:", 2},
		{"add product without sku", `ADD PRODUCT "Widget"`, "Invalid argument, the command format is:", 1},
		{"add warehouse without number", "ADD WAREHOUSE", "Invalid argument, the command format is:", 1},
		{"stock missing qty", "STOCK a1b2 970", "Invalid argument, similar commands are:", 1},
		{"unstock missing qty", "UNSTOCK a1b2 970", "Invalid argument, similar commands are:", 1},
		{"bare list", "LIST", "Invalid command, similar commands are:", 3},
		{"list warehouse without number", "LIST WAREHOUSE", "Invalid argument, the command format is:", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, display, _ := newTestDispatcher(t)

			require.NoError(t, d.Handle(context.Background(), tt.line))
			require.NotEmpty(t, display.prints)
			assert.Equal(t, tt.headline+"\n", display.prints[0])
			assert.Len(t, display.prints, tt.formats+2)
		})
	}
}

func TestHandle_ListProducts(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)
	st.On("ListProducts", mock.Anything).Return([]models.Product{
		{SKU: "a1b2", Name: "Widget"},
		{SKU: "c3d4", Name: "Sprocket"},
	}, nil)

	require.NoError(t, d.Handle(context.Background(), "LIST PRODUCTS"))

	require.Len(t, display.tables, 1)
	assert.Equal(t, []string{"SKU", "product_name"}, display.tables[0].headers)
	assert.Equal(t, [][]any{{"a1b2", "Widget"}, {"c3d4", "Sprocket"}}, display.tables[0].rows)
}

func TestHandle_ListWarehouses(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)
	st.On("ListWarehouses", mock.Anything).Return([]models.Warehouse{
		{Number: 5, LimitQty: limit(100)},
		{Number: 970, LimitQty: nil},
	}, nil)

	require.NoError(t, d.Handle(context.Background(), "LIST WAREHOUSES"))

	require.Len(t, display.tables, 1)
	assert.Equal(t, []string{"warehouse_num", "limit_qty"}, display.tables[0].headers)
	require.Len(t, display.tables[0].rows, 2)
}

func TestHandle_ListingIsIdempotent(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)
	st.On("ListProducts", mock.Anything).Return([]models.Product{{SKU: "a1b2", Name: "Widget"}}, nil)

	require.NoError(t, d.Handle(context.Background(), "LIST PRODUCTS"))
	require.NoError(t, d.Handle(context.Background(), "LIST PRODUCTS"))

	require.Len(t, display.tables, 2)
	assert.Equal(t, display.tables[0], display.tables[1])
}

func TestHandle_ListWarehouseStock(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)
	st.On("WarehouseLimit", mock.Anything, 970).Return((*int)(nil), nil)
	st.On("ListWarehouseStock", mock.Anything, 970).Return([]models.WarehouseStock{
		{SKU: "a1b2", ProductName: "Widget", Qty: 1000},
	}, nil)

	require.NoError(t, d.Handle(context.Background(), "LIST WAREHOUSE 970"))

	require.Len(t, display.tables, 1)
	assert.Equal(t, []string{"SKU", "product_name", "qty"}, display.tables[0].headers)
	assert.Equal(t, [][]any{{"a1b2", "Widget", 1000}}, display.tables[0].rows)
}

func TestHandle_HistoryRecordsAcceptedLines(t *testing.T) {
	d, st, _, hist := newTestDispatcher(t)
	st.On("InsertProduct", mock.Anything, "Widget", "a1b2").Return(nil)

	require.NoError(t, d.Handle(context.Background(), `ADD PRODUCT "Widget" a1b2`))
	// Unrecognized but tokenizable lines are still recorded.
	require.NoError(t, d.Handle(context.Background(), "FROB everything"))
	// Untokenizable lines are not.
	require.NoError(t, d.Handle(context.Background(), "   "))

	assert.Equal(t, []string{`ADD PRODUCT "Widget" a1b2`, "FROB everything"}, hist.lines)
}

func TestHandle_HistoryFailureDoesNotBlockCommand(t *testing.T) {
	d, st, _, hist := newTestDispatcher(t)
	hist.err = errors.New("disk full")
	st.On("InsertProduct", mock.Anything, "Widget", "a1b2").Return(nil)

	require.NoError(t, d.Handle(context.Background(), `ADD PRODUCT "Widget" a1b2`))
	st.AssertExpectations(t)
}

func TestHandle_FatalStoreFailurePropagates(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)
	fatal := errors.New("database is locked")
	st.On("ListProducts", mock.Anything).Return(nil, fatal)

	err := d.Handle(context.Background(), "LIST PRODUCTS")

	assert.ErrorIs(t, err, fatal)
	assert.Empty(t, display.prints, "fatal errors are not rendered as user messages")
}

func TestHandle_RecoverableFailureIsRendered(t *testing.T) {
	d, st, display, _ := newTestDispatcher(t)
	st.On("WarehouseLimit", mock.Anything, 42).Return(nil, notFoundErr())

	err := d.Handle(context.Background(), "LIST WAREHOUSE 42")

	require.NoError(t, err, "recoverable failures never stop the loop")
	require.Len(t, display.prints, 1)
	assert.True(t, strings.HasSuffix(display.prints[0], "WAREHOUSE DOES NOT EXIST"))
}
