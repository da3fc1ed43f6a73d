package inventory

import (
	"context"
	"errors"
	"strconv"

	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/reconcile"
	"inventory-manager/feature/inventory/store"

	"go.uber.org/zap"
)

// Service runs the inventory commands against the store. Each command is a
// fixed read-then-write sequence; the ordering (limit, then total, then
// existing row, then write) decides which error surfaces first and must not
// be rearranged.
type Service struct {
	store store.Store
	log   *zap.Logger
}

// NewService creates a Service over the given store.
func NewService(st store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

// AddProduct adds a product to the catalog. A SKU collision is a
// recoverable *Failure; the catalog is unchanged in that case.
func (s *Service) AddProduct(ctx context.Context, name, sku string) error {
	err := s.store.InsertProduct(ctx, name, sku)
	if errors.Is(err, store.ErrDuplicateKey) {
		return &Failure{
			Verb:    VerbAdding,
			Subject: SubjectProduct,
			Field:   FieldSKU,
			Value:   sku,
			Reason:  ReasonAlreadyExists,
		}
	}
	return err
}

// AddWarehouse creates a warehouse. limit is nil for unbounded storage.
func (s *Service) AddWarehouse(ctx context.Context, number int, limit *int) error {
	err := s.store.InsertWarehouse(ctx, number, limit)
	if errors.Is(err, store.ErrDuplicateKey) {
		return &Failure{
			Verb:    VerbAdding,
			Subject: SubjectWarehouse,
			Field:   FieldWarehouseNum,
			Value:   strconv.Itoa(number),
			Reason:  ReasonAlreadyExists,
		}
	}
	return err
}

// Stock moves up to qty units of a product into a warehouse. A warehouse
// with a limit receives at most the room it has left, measured against the
// total across all products.
func (s *Service) Stock(ctx context.Context, sku string, number, qty int) error {
	limit, err := s.store.WarehouseLimit(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &Failure{
				Verb:    VerbStocking,
				Subject: SubjectWarehouse,
				Field:   FieldWarehouseNum,
				Value:   strconv.Itoa(number),
				Reason:  ReasonWarehouseNotFound,
			}
		}
		return err
	}

	total, err := s.store.SumStock(ctx, number)
	if err != nil {
		return err
	}
	available := reconcile.Available(limit, total, qty)

	row, err := s.store.GetStockRow(ctx, sku, number)
	if err != nil {
		return err
	}

	var existingQty int
	if row != nil {
		existingQty = row.Qty
	}
	m := reconcile.PlanStock(available, existingQty, row != nil)

	switch m.Op {
	case reconcile.OpInsert:
		err = s.store.InsertStockRow(ctx, sku, number, m.Qty)
		if errors.Is(err, store.ErrConstraintViolation) {
			// The row was just confirmed absent, so a constraint here
			// means the SKU is not in the catalog.
			return &Failure{
				Verb:    VerbStocking,
				Subject: SubjectWarehouse,
				Field:   FieldSKU,
				Value:   sku,
				Reason:  ReasonProductNotFound,
			}
		}
		return err
	default:
		return s.store.UpdateStockRow(ctx, sku, number, m.Qty)
	}
}

// Unstock removes up to qty units of a product from a warehouse. The stored
// quantity never drops below zero. An empty warehouse, or a request the
// room formula gates out, succeeds without touching anything.
func (s *Service) Unstock(ctx context.Context, sku string, number, qty int) error {
	limit, err := s.store.WarehouseLimit(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &Failure{
				Verb:    VerbUnstocking,
				Subject: SubjectWarehouse,
				Field:   FieldWarehouseNum,
				Value:   strconv.Itoa(number),
				Reason:  ReasonWarehouseNotFound,
			}
		}
		return err
	}

	total, err := s.store.SumStock(ctx, number)
	if err != nil {
		return err
	}
	available := reconcile.Available(limit, total, qty)
	if reconcile.SkipUnstock(total, available) {
		s.log.Debug("nothing to unstock",
			zap.String("sku", sku), zap.Int("warehouse", number))
		return nil
	}

	row, err := s.store.GetStockRow(ctx, sku, number)
	if err != nil {
		return err
	}
	if row == nil {
		return &Failure{
			Verb:    VerbUnstocking,
			Subject: SubjectWarehouse,
			Field:   FieldSKU,
			Value:   sku,
			Reason:  ReasonProductNotFound,
		}
	}

	return s.store.UpdateStockRow(ctx, sku, number, reconcile.UnstockQty(row.Qty, qty))
}

// ListProducts returns the product catalog.
func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

// ListWarehouses returns all warehouses.
func (s *Service) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	return s.store.ListWarehouses(ctx)
}

// ListWarehouse returns the stocked products of one warehouse. A missing
// warehouse is a recoverable *Failure, not an empty listing.
func (s *Service) ListWarehouse(ctx context.Context, number int) ([]models.WarehouseStock, error) {
	if _, err := s.store.WarehouseLimit(ctx, number); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &Failure{
				Verb:    VerbListing,
				Subject: SubjectWarehouse,
				Field:   FieldWarehouseNum,
				Value:   strconv.Itoa(number),
				Reason:  ReasonWarehouseNotFound,
			}
		}
		return nil, err
	}
	return s.store.ListWarehouseStock(ctx, number)
}
