package migrations

import (
	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_category_table", &CreateCategoryTable{})
	migration.Register("20260101000001_create_product_table", &CreateProductTable{})
	migration.Register("20260101000002_create_customer_order_table", &CreateCustomerOrderTable{})
	migration.Register("20260101000003_create_customer_order_product_table", &CreateCustomerOrderProductTable{})
	migration.Register("20260101000004_create_image_table", &CreateImageTable{})
	migration.Register("20260101000005_create_user_table", &CreateUserTable{})
	migration.Register("20260101000006_create_wishlist_table", &CreateWishlistTable{})
}

// -------- 0001: category --------

type CreateCategoryTable struct{}

func (m *CreateCategoryTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}

func (m *CreateCategoryTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("category")
}

// -------- 0002: product --------

type CreateProductTable struct{}

func (m *CreateProductTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("product")
}

// -------- 0003: customer_order --------

type CreateCustomerOrderTable struct{}

func (m *CreateCustomerOrderTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.CustomerOrder{})
}

func (m *CreateCustomerOrderTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customer_order")
}

// -------- 0004: customer_order_product --------

type CreateCustomerOrderProductTable struct{}

func (m *CreateCustomerOrderProductTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderProduct{})
}

func (m *CreateCustomerOrderProductTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customer_order_product")
}

// -------- 0005: image --------

type CreateImageTable struct{}

func (m *CreateImageTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Image{})
}

func (m *CreateImageTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("image")
}

// -------- 0006: user --------

type CreateUserTable struct{}

func (m *CreateUserTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUserTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("user")
}

// -------- 0007: wishlist --------

type CreateWishlistTable struct{}

func (m *CreateWishlistTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Wishlist{})
}

func (m *CreateWishlistTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("wishlist")
}
