package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// Store defines the persistence operations the inventory commands need.
type Store interface {
	// InsertProduct adds a product to the catalog.
	InsertProduct(ctx context.Context, name, sku string) error
	// InsertWarehouse creates a warehouse. limit is nil for unbounded storage.
	InsertWarehouse(ctx context.Context, number int, limit *int) error
	// InsertStockRow creates the first stock row for a (warehouse, SKU) pair.
	InsertStockRow(ctx context.Context, sku string, number, qty int) error
	// UpdateStockRow overwrites the quantity of an existing stock row.
	UpdateStockRow(ctx context.Context, sku string, number, qty int) error
	// GetStockRow fetches one stock row, or (nil, nil) when absent.
	GetStockRow(ctx context.Context, sku string, number int) (*models.Stock, error)
	// SumStock returns the total quantity stored in a warehouse across all
	// products. A warehouse with no stock rows sums to zero.
	SumStock(ctx context.Context, number int) (int, error)
	// WarehouseLimit returns a warehouse's capacity, nil when unbounded.
	// A missing warehouse is ErrNotFound; this distinction drives the
	// warehouse-existence checks.
	WarehouseLimit(ctx context.Context, number int) (*int, error)
	// ListProducts returns the product catalog.
	ListProducts(ctx context.Context) ([]models.Product, error)
	// ListWarehouses returns all warehouses.
	ListWarehouses(ctx context.Context) ([]models.Warehouse, error)
	// ListWarehouseStock returns the products stocked in one warehouse with
	// their quantities.
	ListWarehouseStock(ctx context.Context, number int) ([]models.WarehouseStock, error)
}

// New creates a Store backed by the given gorm connection.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) InsertProduct(ctx context.Context, name, sku string) error {
	err := s.db.WithContext(ctx).Create(&models.Product{SKU: sku, Name: name}).Error
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: product %s: %v", ErrDuplicateKey, sku, err)
		}
		return fmt.Errorf("insert product %s: %w", sku, err)
	}
	return nil
}

func (s *gormStore) InsertWarehouse(ctx context.Context, number int, limit *int) error {
	err := s.db.WithContext(ctx).Create(&models.Warehouse{Number: number, LimitQty: limit}).Error
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: warehouse %d: %v", ErrDuplicateKey, number, err)
		}
		return fmt.Errorf("insert warehouse %d: %w", number, err)
	}
	return nil
}

func (s *gormStore) InsertStockRow(ctx context.Context, sku string, number, qty int) error {
	err := s.db.WithContext(ctx).Create(&models.Stock{WarehouseNum: number, SKU: sku, Qty: qty}).Error
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("%w: stock (%d, %s): %v", ErrConstraintViolation, number, sku, err)
		}
		return fmt.Errorf("insert stock (%d, %s): %w", number, sku, err)
	}
	return nil
}

func (s *gormStore) UpdateStockRow(ctx context.Context, sku string, number, qty int) error {
	res := s.db.WithContext(ctx).Model(&models.Stock{}).
		Where("warehouse_num = ? AND SKU = ?", number, sku).
		Update("qty", qty)
	if res.Error != nil {
		return fmt.Errorf("update stock (%d, %s): %w", number, sku, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: stock (%d, %s)", ErrNotFound, number, sku)
	}
	return nil
}

func (s *gormStore) GetStockRow(ctx context.Context, sku string, number int) (*models.Stock, error) {
	var row models.Stock
	err := s.db.WithContext(ctx).
		Where("warehouse_num = ? AND SKU = ?", number, sku).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock (%d, %s): %w", number, sku, err)
	}
	return &row, nil
}

func (s *gormStore) SumStock(ctx context.Context, number int) (int, error) {
	// SUM over no rows is NULL, so scan through a nullable.
	row := s.db.WithContext(ctx).
		Raw("SELECT SUM(qty) FROM stock WHERE warehouse_num = ?", number).
		Row()
	var total sql.NullInt64
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("sum stock for warehouse %d: %w", number, err)
	}
	if !total.Valid {
		return 0, nil
	}
	return int(total.Int64), nil
}

func (s *gormStore) WarehouseLimit(ctx context.Context, number int) (*int, error) {
	var wh models.Warehouse
	err := s.db.WithContext(ctx).
		Where("warehouse_num = ?", number).
		First(&wh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: warehouse %d", ErrNotFound, number)
		}
		return nil, fmt.Errorf("get warehouse %d: %w", number, err)
	}
	return wh.LimitQty, nil
}

func (s *gormStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("SKU").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *gormStore) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	if err := s.db.WithContext(ctx).Order("warehouse_num").Find(&warehouses).Error; err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return warehouses, nil
}

func (s *gormStore) ListWarehouseStock(ctx context.Context, number int) ([]models.WarehouseStock, error) {
	var rows []models.WarehouseStock
	err := s.db.WithContext(ctx).
		Raw(`SELECT stock.SKU, product.product_name, stock.qty
			FROM stock JOIN product ON product.SKU = stock.SKU
			WHERE stock.warehouse_num = ? ORDER BY stock.SKU`, number).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list stock for warehouse %d: %w", number, err)
	}
	return rows, nil
}
