package controllers_test

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/internal/server"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// newTestDB opens a fresh in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the shared in-memory database alive for the
	// whole test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() }) //nolint:errcheck

	require.NoError(t, server.AutoMigrate(db), "auto-migrate")
	return db
}

// newTestServer mounts the full API surface over a fresh database.
func newTestServer(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return server.NewRouter(db).Handler(), db
}

// seedCategory inserts a category directly, bypassing the API.
func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

// seedProduct inserts a product directly, bypassing the API.
func seedProduct(t *testing.T, db *gorm.DB, slug string, categoryID string, price int) models.Product {
	t.Helper()
	product := models.Product{
		Slug:         slug,
		Title:        "Product " + slug,
		MainImage:    slug + ".webp",
		Price:        price,
		Description:  "Description for " + slug,
		Manufacturer: "Acme",
		InStock:      1,
		Rating:       5,
		CategoryID:   categoryID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// seedUser inserts a user directly, bypassing the API.
func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "not-a-real-hash", Role: "user"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// seedOrder inserts a customer order directly, bypassing the API.
func seedOrder(t *testing.T, db *gorm.DB, email string) models.CustomerOrder {
	t.Helper()
	order := models.CustomerOrder{
		Name:     "Order",
		Lastname: "Test",
		Phone:    "1234567890",
		Email:    email,
		Adress:   "123 Test St",
		Status:   "Pending",
		Total:    150,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}
