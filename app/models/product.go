package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item. Price is stored in whole currency units and
// rating defaults to 5 when a product is created without one.
type Product struct {
	ID           string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Slug         string    `gorm:"uniqueIndex;size:255;not null;column:slug" json:"slug"`
	Title        string    `gorm:"size:255;not null;column:title" json:"title"`
	MainImage    string    `gorm:"size:255;not null;column:mainImage" json:"mainImage"`
	Price        int       `gorm:"not null;default:0;column:price" json:"price"`
	Rating       int       `gorm:"not null;default:5;column:rating" json:"rating"`
	Description  string    `gorm:"type:text;not null;column:description" json:"description"`
	Manufacturer string    `gorm:"size:255;not null;column:manufacturer" json:"manufacturer"`
	InStock      int       `gorm:"not null;default:1;column:inStock" json:"inStock"`
	CategoryID   string    `gorm:"size:36;not null;index;column:categoryId" json:"categoryId"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string { return "product" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Image is a secondary product photo, keyed by its own imageID and
// linked to a product via productID.
type Image struct {
	ImageID   string `gorm:"primaryKey;size:36;column:imageID" json:"imageID"`
	ProductID string `gorm:"size:36;not null;index;column:productID" json:"productID"`
	Image     string `gorm:"size:255;not null;column:image" json:"image"`
}

func (Image) TableName() string { return "image" }

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ImageID == "" {
		i.ImageID = uuid.NewString()
	}
	return nil
}
