package controllers_test

import (
	"net/http"
	"testing"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/pkg/testkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCreate(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "pictured")
	product := seedProduct(t, db, "pictured-product", category.ID, 100)

	rec := testkit.Do(t, h, http.MethodPost, "/api/images", map[string]string{
		"productID": product.ID,
		"image":     "front.png",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var image models.Image
	testkit.DecodeJSON(t, rec, &image)
	assert.NotEmpty(t, image.ImageID)
	assert.Equal(t, product.ID, image.ProductID)
	assert.Equal(t, "front.png", image.Image)
}

func TestImageListByProduct(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "galleried")
	product := seedProduct(t, db, "galleried-product", category.ID, 100)

	require.NoError(t, db.Create(&models.Image{ProductID: product.ID, Image: "first.png"}).Error)
	require.NoError(t, db.Create(&models.Image{ProductID: product.ID, Image: "second.png"}).Error)

	rec := testkit.Do(t, h, http.MethodGet, "/api/images/"+product.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var images []models.Image
	testkit.DecodeJSON(t, rec, &images)
	require.Len(t, images, 2)
}

func TestImageListUnknownProductReturnsEmptyArray(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodGet, "/api/images/nonexistent-id", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestImageUpdateFirstMatch(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "retouched")
	product := seedProduct(t, db, "retouched-product", category.ID, 100)

	first := models.Image{ProductID: product.ID, Image: "original.png"}
	require.NoError(t, db.Create(&first).Error)

	rec := testkit.Do(t, h, http.MethodPut, "/api/images/"+product.ID, map[string]string{
		"image": "retouched.png",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Image
	testkit.DecodeJSON(t, rec, &updated)
	assert.Equal(t, first.ImageID, updated.ImageID, "id unchanged")
	assert.Equal(t, "retouched.png", updated.Image)
	assert.Equal(t, product.ID, updated.ProductID)
}

func TestImageUpdateUnknownProduct(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodPut, "/api/images/nonexistent-id", map[string]string{"image": "x.png"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Image not found", testkit.ErrorMessage(t, rec))
}

func TestImageDeleteRemovesAllForProduct(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "wiped")
	product := seedProduct(t, db, "wiped-product", category.ID, 100)

	require.NoError(t, db.Create(&models.Image{ProductID: product.ID, Image: "a.png"}).Error)
	require.NoError(t, db.Create(&models.Image{ProductID: product.ID, Image: "b.png"}).Error)

	rec := testkit.Do(t, h, http.MethodDelete, "/api/images/"+product.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Image{}).Where("productID = ?", product.ID).Count(&count).Error)
	assert.Zero(t, count)
}
