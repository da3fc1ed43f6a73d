package models

// Product is a catalog entry. Products are identified by SKU and are
// immutable once added; names may repeat, SKUs may not.
type Product struct {
	SKU  string `gorm:"column:SKU;primaryKey;size:50"`
	Name string `gorm:"column:product_name;size:50;not null"`
}

// TableName specifies the table name for Product.
func (Product) TableName() string {
	return "product"
}

// Warehouse is a storage location. LimitQty is the total capacity across
// all products; nil means the warehouse is unbounded.
type Warehouse struct {
	Number   int  `gorm:"column:warehouse_num;primaryKey;autoIncrement:false"`
	LimitQty *int `gorm:"column:limit_qty"`
}

// TableName specifies the table name for Warehouse.
func (Warehouse) TableName() string {
	return "warehouse"
}

// Stock holds the quantity of one product in one warehouse. At most one
// row exists per (warehouse, SKU) pair and Qty never goes negative.
type Stock struct {
	WarehouseNum int    `gorm:"column:warehouse_num;primaryKey;autoIncrement:false"`
	SKU          string `gorm:"column:SKU;primaryKey;size:50"`
	Qty          int    `gorm:"column:qty;not null"`
}

// TableName specifies the table name for Stock.
func (Stock) TableName() string {
	return "stock"
}

// WarehouseStock is a read model for listing a warehouse's contents:
// one row per stocked product, joined against the catalog for the name.
type WarehouseStock struct {
	SKU         string `gorm:"column:SKU"`
	ProductName string `gorm:"column:product_name"`
	Qty         int    `gorm:"column:qty"`
}
