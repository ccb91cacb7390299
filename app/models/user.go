package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a store account. Password holds the bcrypt hash and is never
// serialised.
type User struct {
	ID       string `gorm:"primaryKey;size:36;column:id" json:"id"`
	Email    string `gorm:"uniqueIndex;size:255;not null;column:email" json:"email"`
	Password string `gorm:"size:255;not null;column:password" json:"-"`
	Role     string `gorm:"size:50;default:user;column:role" json:"role"`
}

func (User) TableName() string { return "user" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Wishlist links a user to a product. Duplicate pairs are permitted.
type Wishlist struct {
	ID        string   `gorm:"primaryKey;size:36;column:id" json:"id"`
	UserID    string   `gorm:"size:36;not null;index;column:userId" json:"userId"`
	ProductID string   `gorm:"size:36;not null;index;column:productId" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Wishlist) TableName() string { return "wishlist" }

func (w *Wishlist) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
