package controllers_test

import (
	"net/http"
	"testing"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/pkg/testkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistCreateAllowsDuplicates(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "wished")
	product := seedProduct(t, db, "wished-product", category.ID, 100)
	user := seedUser(t, db, "wisher@example.com")

	body := map[string]string{"userId": user.ID, "productId": product.ID}

	rec := testkit.Do(t, h, http.MethodPost, "/api/wishlist", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = testkit.Do(t, h, http.MethodPost, "/api/wishlist", body)
	require.Equal(t, http.StatusCreated, rec.Code, "duplicate pair accepted")

	rec = testkit.Do(t, h, http.MethodGet, "/api/wishlist/"+user.ID+"/"+product.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Wishlist
	testkit.DecodeJSON(t, rec, &items)
	assert.Len(t, items, 2, "both rows independently retrievable")
}

func TestWishlistListByUser(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "listed")
	product := seedProduct(t, db, "listed-product", category.ID, 100)
	user := seedUser(t, db, "lister@example.com")

	require.NoError(t, db.Create(&models.Wishlist{UserID: user.ID, ProductID: product.ID}).Error)

	rec := testkit.Do(t, h, http.MethodGet, "/api/wishlist/user/"+user.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Wishlist
	testkit.DecodeJSON(t, rec, &items)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product, "nested product detail")
	assert.Equal(t, "listed-product", items[0].Product.Slug)
}

func TestWishlistListByUnknownUserReturnsEmptyArray(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodGet, "/api/wishlist/user/nonexistent-id", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestWishlistGetPairReturnsArray(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodGet, "/api/wishlist/no-user/no-product", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "zero matches still an array")
}

func TestWishlistDeleteIsIdempotent(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "unwished")
	product := seedProduct(t, db, "unwished-product", category.ID, 100)
	user := seedUser(t, db, "unwisher@example.com")

	require.NoError(t, db.Create(&models.Wishlist{UserID: user.ID, ProductID: product.ID}).Error)

	rec := testkit.Do(t, h, http.MethodDelete, "/api/wishlist/"+user.ID+"/"+product.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Nothing left to delete, still 204.
	rec = testkit.Do(t, h, http.MethodDelete, "/api/wishlist/"+user.ID+"/"+product.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWishlistListAll(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "global")
	product := seedProduct(t, db, "global-product", category.ID, 100)
	first := seedUser(t, db, "first.wisher@example.com")
	second := seedUser(t, db, "second.wisher@example.com")

	require.NoError(t, db.Create(&models.Wishlist{UserID: first.ID, ProductID: product.ID}).Error)
	require.NoError(t, db.Create(&models.Wishlist{UserID: second.ID, ProductID: product.ID}).Error)

	rec := testkit.Do(t, h, http.MethodGet, "/api/wishlist", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Wishlist
	testkit.DecodeJSON(t, rec, &items)
	assert.Len(t, items, 2)
}
