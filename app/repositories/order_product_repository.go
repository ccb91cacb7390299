package repositories

import (
	"github.com/singitronic/storefront/app/models"
	"gorm.io/gorm"
)

// OrderProductRepository handles database operations for the
// order-to-product link table.
type OrderProductRepository struct {
	db *gorm.DB
}

func NewOrderProductRepository(db *gorm.DB) *OrderProductRepository {
	return &OrderProductRepository{db: db}
}

// AllWithRelations returns every link with its parent order and product.
func (r *OrderProductRepository) AllWithRelations() ([]models.OrderProduct, error) {
	links := []models.OrderProduct{}
	err := r.db.Preload("CustomerOrder").Preload("Product").Find(&links).Error
	return links, err
}

// FindByOrderID returns all links for one order with nested product detail.
func (r *OrderProductRepository) FindByOrderID(orderID string) ([]models.OrderProduct, error) {
	links := []models.OrderProduct{}
	err := r.db.Preload("Product").Where("customerOrderId = ?", orderID).Find(&links).Error
	return links, err
}

// FindByID looks up a single link by its own primary key.
func (r *OrderProductRepository) FindByID(id string) (models.OrderProduct, error) {
	var link models.OrderProduct
	err := r.db.Where("id = ?", id).First(&link).Error
	return link, err
}

// Create persists a new link.
func (r *OrderProductRepository) Create(link *models.OrderProduct) error {
	return r.db.Create(link).Error
}

// Update applies a partial-field merge to an existing link.
func (r *OrderProductRepository) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.OrderProduct{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteByOrderID removes every link belonging to the given order.
func (r *OrderProductRepository) DeleteByOrderID(orderID string) error {
	return r.db.Delete(&models.OrderProduct{}, "customerOrderId = ?", orderID).Error
}
