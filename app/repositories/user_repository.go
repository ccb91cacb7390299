package repositories

import (
	"github.com/singitronic/storefront/app/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// All returns every user.
func (r *UserRepository) All() ([]models.User, error) {
	users := []models.User{}
	err := r.db.Find(&users).Error
	return users, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	return user, err
}

// FindByEmail looks up a user by their unique email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, err
}

// Create inserts the user inside a transaction that re-checks email
// uniqueness.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ?", user.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(user).Error
	})
}

// Update applies a partial-field merge, re-checking email uniqueness when
// the email changes.
func (r *UserRepository) Update(id string, fields map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if email, ok := fields["email"]; ok {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("email = ? AND id <> ?", email, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return gorm.ErrDuplicatedKey
			}
		}
		return tx.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
	})
}

// Delete removes a user by primary key.
func (r *UserRepository) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
