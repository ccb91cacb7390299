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

// CategoryController serves the /api/categories endpoints.
type CategoryController struct {
	categories *repositories.CategoryRepository
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{categories: repositories.NewCategoryRepository(db)}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// List returns every category.
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categories.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list categories", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching categories")
		return
	}
	response.OK(w, categories)
}

// Get returns one category by id.
func (c *CategoryController) Get(w http.ResponseWriter, r *http.Request) {
	category, err := c.categories.FindByID(router.Param(r, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Category not found")
			return
		}
		logger.WithCtx(r.Context()).Error("get category", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching category")
		return
	}
	response.OK(w, category)
}

// Create inserts a category. Duplicate names are rejected with 409.
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category := models.Category{Name: body.Name}
	if err := c.categories.Create(&category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(w, http.StatusConflict, "Category already exists")
			return
		}
		logger.WithCtx(r.Context()).Error("create category", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error creating category")
		return
	}
	response.Created(w, category)
}

// Update renames a category. Renaming onto another category's name is a 409.
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.categories.FindByID(router.Param(r, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Category not found")
			return
		}
		logger.WithCtx(r.Context()).Error("update category", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating category")
		return
	}

	category.Name = body.Name
	if err := c.categories.Update(&category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(w, http.StatusConflict, "Category already exists")
			return
		}
		logger.WithCtx(r.Context()).Error("update category", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating category")
		return
	}
	response.OK(w, category)
}

// Delete removes a category by id.
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	if _, err := c.categories.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Category not found")
			return
		}
		logger.WithCtx(r.Context()).Error("delete category", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting category")
		return
	}

	if err := c.categories.Delete(id); err != nil {
		logger.WithCtx(r.Context()).Error("delete category", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting category")
		return
	}
	response.NoContent(w)
}
