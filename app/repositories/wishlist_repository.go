package repositories

import (
	"github.com/singitronic/storefront/app/models"
	"gorm.io/gorm"
)

// WishlistRepository handles database operations for wishlist entries.
// Duplicate (userId, productId) pairs are allowed.
type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// All returns every wishlist entry with nested product detail.
func (r *WishlistRepository) All() ([]models.Wishlist, error) {
	items := []models.Wishlist{}
	err := r.db.Preload("Product").Find(&items).Error
	return items, err
}

// FindByUserID returns one user's entries with nested product detail.
func (r *WishlistRepository) FindByUserID(userID string) ([]models.Wishlist, error) {
	items := []models.Wishlist{}
	err := r.db.Preload("Product").Where("userId = ?", userID).Find(&items).Error
	return items, err
}

// FindByUserAndProduct returns all entries for one (user, product) pair.
// Always a slice since duplicates are permitted.
func (r *WishlistRepository) FindByUserAndProduct(userID, productID string) ([]models.Wishlist, error) {
	items := []models.Wishlist{}
	err := r.db.Where("userId = ? AND productId = ?", userID, productID).Find(&items).Error
	return items, err
}

// Create persists a new entry without any uniqueness check.
func (r *WishlistRepository) Create(item *models.Wishlist) error {
	return r.db.Create(item).Error
}

// DeleteByUserAndProduct removes all entries for one (user, product) pair.
func (r *WishlistRepository) DeleteByUserAndProduct(userID, productID string) error {
	return r.db.Delete(&models.Wishlist{}, "userId = ? AND productId = ?", userID, productID).Error
}
