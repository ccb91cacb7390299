package controllers

import (
	"net/http"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/app/repositories"
	"github.com/singitronic/storefront/pkg/bind"
	"github.com/singitronic/storefront/pkg/logger"
	"github.com/singitronic/storefront/pkg/response"
	"github.com/singitronic/storefront/pkg/router"
	"gorm.io/gorm"
)

// WishlistController serves the /api/wishlist endpoints.
// Duplicate entries for the same (user, product) pair are allowed, and
// invalid foreign keys surface as 500, a behaviour existing clients
// depend on.
type WishlistController struct {
	wishlist *repositories.WishlistRepository
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{wishlist: repositories.NewWishlistRepository(db)}
}

type createWishlistRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// List returns every wishlist entry across all users.
func (c *WishlistController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.wishlist.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list wishlist", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching wish items")
		return
	}
	response.OK(w, items)
}

// ListByUser returns one user's entries. Unknown users yield an empty
// array.
func (c *WishlistController) ListByUser(w http.ResponseWriter, r *http.Request) {
	items, err := c.wishlist.FindByUserID(router.Param(r, "userId"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("list user wishlist", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching wish items")
		return
	}
	response.OK(w, items)
}

// Get returns the entries matching a (user, product) pair as an array,
// zero or more elements.
func (c *WishlistController) Get(w http.ResponseWriter, r *http.Request) {
	items, err := c.wishlist.FindByUserAndProduct(
		router.Param(r, "userId"), router.Param(r, "productId"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("get wish item", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching wish items")
		return
	}
	response.OK(w, items)
}

// Create inserts an entry without a uniqueness check.
func (c *WishlistController) Create(w http.ResponseWriter, r *http.Request) {
	var body createWishlistRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item := models.Wishlist{UserID: body.UserID, ProductID: body.ProductID}
	if err := c.wishlist.Create(&item); err != nil {
		logger.WithCtx(r.Context()).Error("create wish item", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error creating wish item")
		return
	}
	response.Created(w, item)
}

// Delete removes all entries for a (user, product) pair. Always 204.
func (c *WishlistController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.wishlist.DeleteByUserAndProduct(
		router.Param(r, "userId"), router.Param(r, "productId"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("delete wish item", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting wish items")
		return
	}
	response.NoContent(w)
}
