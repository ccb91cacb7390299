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

// ImageController serves the /api/images endpoints. The {id} path
// segment is the productID, not the image's own key: GET lists all of a
// product's images, PUT updates the first match and DELETE removes all.
type ImageController struct {
	images *repositories.ImageRepository
}

func NewImageController(db *gorm.DB) *ImageController {
	return &ImageController{images: repositories.NewImageRepository(db)}
}

type createImageRequest struct {
	ProductID string `json:"productID" validate:"required"`
	Image     string `json:"image" validate:"required"`
}

type updateImageRequest struct {
	ProductID *string `json:"productID"`
	Image     *string `json:"image"`
}

// ListByProduct returns every image for the given product. Unknown
// products yield an empty array.
func (c *ImageController) ListByProduct(w http.ResponseWriter, r *http.Request) {
	images, err := c.images.FindByProductID(router.Param(r, "id"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("list images", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching images")
		return
	}
	response.OK(w, images)
}

// Create inserts a new image row.
func (c *ImageController) Create(w http.ResponseWriter, r *http.Request) {
	var body createImageRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	image := models.Image{ProductID: body.ProductID, Image: body.Image}
	if err := c.images.Create(&image); err != nil {
		logger.WithCtx(r.Context()).Error("create image", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error creating image")
		return
	}
	response.Created(w, image)
}

// Update changes only the first image row found for the product.
func (c *ImageController) Update(w http.ResponseWriter, r *http.Request) {
	productID := router.Param(r, "id")

	var body updateImageRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	image, err := c.images.FirstByProductID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Image not found")
			return
		}
		logger.WithCtx(r.Context()).Error("update image", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating image")
		return
	}

	fields := map[string]interface{}{}
	if body.ProductID != nil {
		fields["productID"] = *body.ProductID
	}
	if body.Image != nil {
		fields["image"] = *body.Image
	}

	if len(fields) > 0 {
		if err := c.images.UpdateFirstByProductID(productID, fields); err != nil {
			logger.WithCtx(r.Context()).Error("update image", "error", err)
			response.Error(w, http.StatusInternalServerError, "Error updating image")
			return
		}
		if body.ProductID != nil {
			image.ProductID = *body.ProductID
		}
		if body.Image != nil {
			image.Image = *body.Image
		}
	}
	response.OK(w, image)
}

// Delete removes every image for the given product. Always 204.
func (c *ImageController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.images.DeleteByProductID(router.Param(r, "id")); err != nil {
		logger.WithCtx(r.Context()).Error("delete images", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting images")
		return
	}
	response.NoContent(w)
}
