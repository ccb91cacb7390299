package seeders

import (
	"github.com/singitronic/storefront/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog inserts a starter category and a couple of products so a
// fresh install has something to render. Re-running is a no-op.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	category := models.Category{Name: "speakers"}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Slug:         "sonus-faber-lumina-ii",
			Title:        "Sonus Faber Lumina II",
			MainImage:    "sonus-faber-lumina-ii.webp",
			Price:        999,
			Description:  "Compact bookshelf speaker with a silk dome tweeter.",
			Manufacturer: "Sonus Faber",
			InStock:      1,
			Rating:       5,
			CategoryID:   category.ID,
		},
		{
			Slug:         "focal-chora-806",
			Title:        "Focal Chora 806",
			MainImage:    "focal-chora-806.webp",
			Price:        790,
			Description:  "Two-way bass-reflex bookshelf loudspeaker.",
			Manufacturer: "Focal",
			InStock:      1,
			Rating:       4,
			CategoryID:   category.ID,
		},
	}
	return db.Create(&products).Error
}
