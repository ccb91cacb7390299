package repositories

import (
	"github.com/singitronic/storefront/app/models"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for CustomerOrder.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// All returns every customer order.
func (r *OrderRepository) All() ([]models.CustomerOrder, error) {
	orders := []models.CustomerOrder{}
	err := r.db.Find(&orders).Error
	return orders, err
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id string) (models.CustomerOrder, error) {
	var order models.CustomerOrder
	err := r.db.Where("id = ?", id).First(&order).Error
	return order, err
}

// Create persists a new order. DateTime is stamped by the model hook.
func (r *OrderRepository) Create(order *models.CustomerOrder) error {
	return r.db.Create(order).Error
}

// Update applies a partial-field merge to an existing order.
func (r *OrderRepository) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.CustomerOrder{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes an order by primary key.
func (r *OrderRepository) Delete(id string) error {
	return r.db.Delete(&models.CustomerOrder{}, "id = ?", id).Error
}
