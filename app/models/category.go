package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products. Name is unique across the store.
type Category struct {
	ID   string `gorm:"primaryKey;size:36;column:id" json:"id"`
	Name string `gorm:"uniqueIndex;size:255;not null;column:name" json:"name"`
}

func (Category) TableName() string { return "category" }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
