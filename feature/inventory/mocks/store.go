package mocks

import (
	"context"

	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) InsertProduct(ctx context.Context, name, sku string) error {
	args := m.Called(ctx, name, sku)
	return args.Error(0)
}

func (m *Store) InsertWarehouse(ctx context.Context, number int, limit *int) error {
	args := m.Called(ctx, number, limit)
	return args.Error(0)
}

func (m *Store) InsertStockRow(ctx context.Context, sku string, number, qty int) error {
	args := m.Called(ctx, sku, number, qty)
	return args.Error(0)
}

func (m *Store) UpdateStockRow(ctx context.Context, sku string, number, qty int) error {
	args := m.Called(ctx, sku, number, qty)
	return args.Error(0)
}

func (m *Store) GetStockRow(ctx context.Context, sku string, number int) (*models.Stock, error) {
	args := m.Called(ctx, sku, number)
	if row, ok := args.Get(0).(*models.Stock); ok {
		return row, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) SumStock(ctx context.Context, number int) (int, error) {
	args := m.Called(ctx, number)
	return args.Int(0), args.Error(1)
}

func (m *Store) WarehouseLimit(ctx context.Context, number int) (*int, error) {
	args := m.Called(ctx, number)
	if limit, ok := args.Get(0).(*int); ok {
		return limit, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	args := m.Called(ctx)
	if warehouses, ok := args.Get(0).([]models.Warehouse); ok {
		return warehouses, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ListWarehouseStock(ctx context.Context, number int) ([]models.WarehouseStock, error) {
	args := m.Called(ctx, number)
	if rows, ok := args.Get(0).([]models.WarehouseStock); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}
