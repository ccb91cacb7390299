package repositories

import (
	"github.com/singitronic/storefront/app/models"
	"gorm.io/gorm"
)

// ImageRepository handles database operations for product images.
// Read, update and delete are keyed by productID, not the image's own
// primary key.
type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// FindByProductID returns all images for one product.
func (r *ImageRepository) FindByProductID(productID string) ([]models.Image, error) {
	images := []models.Image{}
	err := r.db.Where("productID = ?", productID).Find(&images).Error
	return images, err
}

// FirstByProductID returns the first image row for one product.
func (r *ImageRepository) FirstByProductID(productID string) (models.Image, error) {
	var image models.Image
	err := r.db.Where("productID = ?", productID).First(&image).Error
	return image, err
}

// Create persists a new image row.
func (r *ImageRepository) Create(image *models.Image) error {
	return r.db.Create(image).Error
}

// UpdateFirstByProductID updates only the first image row matching the
// product.
func (r *ImageRepository) UpdateFirstByProductID(productID string, fields map[string]interface{}) error {
	image, err := r.FirstByProductID(productID)
	if err != nil {
		return err
	}
	return r.db.Model(&models.Image{}).Where("imageID = ?", image.ImageID).Updates(fields).Error
}

// DeleteByProductID removes every image for one product.
func (r *ImageRepository) DeleteByProductID(productID string) error {
	return r.db.Delete(&models.Image{}, "productID = ?", productID).Error
}
