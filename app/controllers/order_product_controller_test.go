package controllers_test

import (
	"net/http"
	"testing"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/pkg/testkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderProductCreateAndGetByOrder(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "linked")
	product := seedProduct(t, db, "linked-product", category.ID, 100)
	order := seedOrder(t, db, "link@example.com")

	rec := testkit.Do(t, h, http.MethodPost, "/api/order-product", map[string]interface{}{
		"customerOrderId": order.ID,
		"productId":       product.ID,
		"quantity":        2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var link models.OrderProduct
	testkit.DecodeJSON(t, rec, &link)
	assert.NotEmpty(t, link.ID)
	assert.Equal(t, 2, link.Quantity)

	rec = testkit.Do(t, h, http.MethodGet, "/api/order-product/"+order.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var links []models.OrderProduct
	testkit.DecodeJSON(t, rec, &links)
	require.Len(t, links, 1)
	assert.Equal(t, order.ID, links[0].CustomerOrderID)
	assert.Equal(t, product.ID, links[0].ProductID)
	require.NotNil(t, links[0].Product, "nested product detail")
	assert.Equal(t, "linked-product", links[0].Product.Slug)
}

func TestOrderProductGetUnknownOrderReturnsEmptyArray(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodGet, "/api/order-product/nonexistent-id", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestOrderProductUpdateQuantity(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "requantified")
	product := seedProduct(t, db, "requantified-product", category.ID, 100)
	order := seedOrder(t, db, "requantify@example.com")

	link := models.OrderProduct{CustomerOrderID: order.ID, ProductID: product.ID, Quantity: 5}
	require.NoError(t, db.Create(&link).Error)

	rec := testkit.Do(t, h, http.MethodPut, "/api/order-product/"+link.ID, map[string]interface{}{
		"quantity": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.OrderProduct
	testkit.DecodeJSON(t, rec, &updated)
	assert.Equal(t, 10, updated.Quantity)
}

func TestOrderProductUpdateUnknownID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodPut, "/api/order-product/nonexistent-id", map[string]interface{}{"quantity": 1})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", testkit.ErrorMessage(t, rec))
}

func TestOrderProductDeleteRemovesAllLinksForOrder(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "cleared")
	first := seedProduct(t, db, "cleared-one", category.ID, 10)
	second := seedProduct(t, db, "cleared-two", category.ID, 20)
	order := seedOrder(t, db, "clear@example.com")

	require.NoError(t, db.Create(&models.OrderProduct{CustomerOrderID: order.ID, ProductID: first.ID, Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.OrderProduct{CustomerOrderID: order.ID, ProductID: second.ID, Quantity: 1}).Error)

	rec := testkit.Do(t, h, http.MethodDelete, "/api/order-product/"+order.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.OrderProduct{}).Where("customerOrderId = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderProductDeleteUnknownOrderIsNoOp(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodDelete, "/api/order-product/nonexistent-id", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOrderProductListGrouped(t *testing.T) {
	h, db := newTestServer(t)
	category := seedCategory(t, db, "grouped")
	first := seedProduct(t, db, "grouped-one", category.ID, 10)
	second := seedProduct(t, db, "grouped-two", category.ID, 20)
	firstOrder := seedOrder(t, db, "first.group@example.com")
	secondOrder := seedOrder(t, db, "second.group@example.com")

	require.NoError(t, db.Create(&models.OrderProduct{CustomerOrderID: firstOrder.ID, ProductID: first.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.OrderProduct{CustomerOrderID: firstOrder.ID, ProductID: second.ID, Quantity: 3}).Error)
	require.NoError(t, db.Create(&models.OrderProduct{CustomerOrderID: secondOrder.ID, ProductID: first.ID, Quantity: 1}).Error)

	rec := testkit.Do(t, h, http.MethodGet, "/api/order-product", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	type groupedProduct struct {
		ID       string `json:"id"`
		Slug     string `json:"slug"`
		Quantity int    `json:"quantity"`
	}
	type group struct {
		CustomerOrderID string               `json:"customerOrderId"`
		CustomerOrder   models.CustomerOrder `json:"customerOrder"`
		Products        []groupedProduct     `json:"products"`
	}

	var groups []group
	testkit.DecodeJSON(t, rec, &groups)
	require.Len(t, groups, 2)

	var firstGroup, secondGroup *group
	for i := range groups {
		switch groups[i].CustomerOrderID {
		case firstOrder.ID:
			firstGroup = &groups[i]
		case secondOrder.ID:
			secondGroup = &groups[i]
		}
	}

	require.NotNil(t, firstGroup)
	assert.Equal(t, "first.group@example.com", firstGroup.CustomerOrder.Email)
	require.Len(t, firstGroup.Products, 2)

	require.NotNil(t, secondGroup)
	assert.Equal(t, "second.group@example.com", secondGroup.CustomerOrder.Email)
	require.Len(t, secondGroup.Products, 1)
	assert.Equal(t, first.ID, secondGroup.Products[0].ID)
	assert.Equal(t, 1, secondGroup.Products[0].Quantity)
}
