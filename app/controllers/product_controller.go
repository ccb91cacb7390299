package controllers

import (
	"errors"
	"net/http"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/app/repositories"
	"github.com/singitronic/storefront/pkg/bind"
	"github.com/singitronic/storefront/pkg/logger"
	"github.com/singitronic/storefront/pkg/response"
	"github.com/singitronic/storefront/pkg/router"
	"gorm.io/gorm"
)

// ProductController serves the /api/products endpoints, including the
// catalog listing and search.
type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{products: repositories.NewProductRepository(db)}
}

type createProductRequest struct {
	Slug         string `json:"slug" validate:"required"`
	Title        string `json:"title" validate:"required"`
	MainImage    string `json:"mainImage" validate:"required"`
	Price        *int   `json:"price" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Manufacturer string `json:"manufacturer" validate:"required"`
	CategoryID   string `json:"categoryId" validate:"required"`
	Rating       *int   `json:"rating"`
	InStock      *int   `json:"inStock"`
}

type updateProductRequest struct {
	Slug         *string `json:"slug"`
	Title        *string `json:"title"`
	MainImage    *string `json:"mainImage"`
	Price        *int    `json:"price"`
	Description  *string `json:"description"`
	Manufacturer *string `json:"manufacturer"`
	CategoryID   *string `json:"categoryId"`
	Rating       *int    `json:"rating"`
	InStock      *int    `json:"inStock"`
}

// List serves the catalog listing. mode=admin returns everything
// unfiltered; otherwise the query is shaped by page, sort and filter
// parameters.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	var (
		products []models.Product
		err      error
	)
	if r.URL.Query().Get("mode") == "admin" {
		products, err = c.products.FindAll()
	} else {
		products, err = c.products.List(parseListOptions(r))
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	response.OK(w, products)
}

// Search returns products whose title or description contains the query
// term. The term is mandatory.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("query")
	if term == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter is required")
		return
	}

	products, err := c.products.Search(term)
	if err != nil {
		logger.WithCtx(r.Context()).Error("search products", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error searching products")
		return
	}
	response.OK(w, products)
}

// Get returns one product by id with its category.
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.FindByID(router.Param(r, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.WithCtx(r.Context()).Error("get product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	response.OK(w, product)
}

// GetBySlug returns one product by its unique slug with its category.
func (c *ProductController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.FindBySlug(router.Param(r, "slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.WithCtx(r.Context()).Error("get product by slug", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	response.OK(w, product)
}

// Create inserts a product. Rating defaults to 5 and inStock to 1 when
// absent from the body.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product := models.Product{
		Slug:         body.Slug,
		Title:        body.Title,
		MainImage:    body.MainImage,
		Price:        *body.Price,
		Description:  body.Description,
		Manufacturer: body.Manufacturer,
		CategoryID:   body.CategoryID,
		Rating:       5,
		InStock:      1,
	}
	if body.Rating != nil {
		product.Rating = *body.Rating
	}
	if body.InStock != nil {
		product.InStock = *body.InStock
	}

	if err := c.products.Create(&product); err != nil {
		logger.WithCtx(r.Context()).Error("create product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error creating product")
		return
	}
	response.Created(w, product)
}

// Update applies a partial-field merge; only supplied keys overwrite.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	var body updateProductRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.products.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.WithCtx(r.Context()).Error("update product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating product")
		return
	}

	fields := map[string]interface{}{}
	if body.Slug != nil {
		fields["slug"] = *body.Slug
	}
	if body.Title != nil {
		fields["title"] = *body.Title
	}
	if body.MainImage != nil {
		fields["mainImage"] = *body.MainImage
	}
	if body.Price != nil {
		fields["price"] = *body.Price
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if body.Manufacturer != nil {
		fields["manufacturer"] = *body.Manufacturer
	}
	if body.CategoryID != nil {
		fields["categoryId"] = *body.CategoryID
	}
	if body.Rating != nil {
		fields["rating"] = *body.Rating
	}
	if body.InStock != nil {
		fields["inStock"] = *body.InStock
	}

	if len(fields) > 0 {
		if err := c.products.Update(id, fields); err != nil {
			logger.WithCtx(r.Context()).Error("update product", "error", err)
			response.Error(w, http.StatusInternalServerError, "Error updating product")
			return
		}
	}

	product, err := c.products.FindByID(id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("update product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating product")
		return
	}
	response.OK(w, product)
}

// Delete removes a product unless an order still references it.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	if _, err := c.products.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.WithCtx(r.Context()).Error("delete product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting product")
		return
	}

	if err := c.products.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			response.Error(w, http.StatusBadRequest, "Cannot delete product because of foreign key constraint. ")
			return
		}
		logger.WithCtx(r.Context()).Error("delete product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	response.NoContent(w)
}
