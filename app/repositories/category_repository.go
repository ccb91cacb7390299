package repositories

import (
	"github.com/singitronic/storefront/app/models"
	"gorm.io/gorm"
)

// CategoryRepository handles database operations for Category.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// All returns every category in insertion order.
func (r *CategoryRepository) All() ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.Find(&categories).Error
	return categories, err
}

// FindByID looks up a category by primary key.
func (r *CategoryRepository) FindByID(id string) (models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	return category, err
}

// FindByName looks up a category by its unique name.
func (r *CategoryRepository) FindByName(name string) (models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	return category, err
}

// Create inserts the category inside a transaction that re-checks name
// uniqueness, so a concurrent writer cannot slip between check and insert.
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).
			Where("name = ?", category.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(category).Error
	})
}

// Update saves the category, re-checking that the new name does not collide
// with a different record.
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).
			Where("name = ? AND id <> ?", category.Name, category.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Save(category).Error
	})
}

// Delete removes a category by primary key.
func (r *CategoryRepository) Delete(id string) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}
