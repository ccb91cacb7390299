package controllers

import (
	"errors"
	"net/http"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/app/repositories"
	"github.com/singitronic/storefront/pkg/bind"
	"github.com/singitronic/storefront/pkg/collection"
	"github.com/singitronic/storefront/pkg/logger"
	"github.com/singitronic/storefront/pkg/response"
	"github.com/singitronic/storefront/pkg/router"
	"gorm.io/gorm"
)

// OrderProductController serves the /api/order-product endpoints.
// The {id} path segment is the customerOrderId for GET and DELETE.
type OrderProductController struct {
	links *repositories.OrderProductRepository
}

func NewOrderProductController(db *gorm.DB) *OrderProductController {
	return &OrderProductController{links: repositories.NewOrderProductRepository(db)}
}

type createOrderProductRequest struct {
	CustomerOrderID string `json:"customerOrderId" validate:"required"`
	ProductID       string `json:"productId" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required,gt=0"`
}

type updateOrderProductRequest struct {
	CustomerOrderID *string `json:"customerOrderId"`
	ProductID       *string `json:"productId"`
	Quantity        *int    `json:"quantity"`
}

// orderProductEntry is one product inside a grouped listing, the product
// fields flattened alongside its ordered quantity.
type orderProductEntry struct {
	models.Product
	Quantity int `json:"quantity"`
}

type orderProductGroup struct {
	CustomerOrderID string               `json:"customerOrderId"`
	CustomerOrder   models.CustomerOrder `json:"customerOrder"`
	Products        []orderProductEntry  `json:"products"`
}

// ListGrouped returns every link grouped by customerOrderId, each group
// carrying the parent order and its products with quantities.
func (c *OrderProductController) ListGrouped(w http.ResponseWriter, r *http.Request) {
	links, err := c.links.AllWithRelations()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list order products", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching order products")
		return
	}

	byOrder, order := collection.GroupBy(links, func(l models.OrderProduct) string {
		return l.CustomerOrderID
	})

	groups := []orderProductGroup{}
	for _, orderID := range order {
		group := orderProductGroup{
			CustomerOrderID: orderID,
			Products:        []orderProductEntry{},
		}
		for _, link := range byOrder[orderID] {
			if link.CustomerOrder != nil {
				group.CustomerOrder = *link.CustomerOrder
			}
			if link.Product != nil {
				group.Products = append(group.Products, orderProductEntry{
					Product:  *link.Product,
					Quantity: link.Quantity,
				})
			}
		}
		groups = append(groups, group)
	}
	response.OK(w, groups)
}

// GetByOrder returns all links for one order with nested product detail.
// Unknown order ids yield an empty array, never a 404.
func (c *OrderProductController) GetByOrder(w http.ResponseWriter, r *http.Request) {
	links, err := c.links.FindByOrderID(router.Param(r, "id"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("get order products", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching order products")
		return
	}
	response.OK(w, links)
}

// Create inserts a new order-product link.
func (c *OrderProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body createOrderProductRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	link := models.OrderProduct{
		CustomerOrderID: body.CustomerOrderID,
		ProductID:       body.ProductID,
		Quantity:        body.Quantity,
	}
	if err := c.links.Create(&link); err != nil {
		logger.WithCtx(r.Context()).Error("create order product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error creating order product")
		return
	}
	response.Created(w, link)
}

// Update changes a single link, addressed by its own primary key.
func (c *OrderProductController) Update(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	var body updateOrderProductRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.links.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.WithCtx(r.Context()).Error("update order product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating order product")
		return
	}

	fields := map[string]interface{}{}
	if body.CustomerOrderID != nil {
		fields["customerOrderId"] = *body.CustomerOrderID
	}
	if body.ProductID != nil {
		fields["productId"] = *body.ProductID
	}
	if body.Quantity != nil {
		fields["quantity"] = *body.Quantity
	}

	if len(fields) > 0 {
		if err := c.links.Update(id, fields); err != nil {
			logger.WithCtx(r.Context()).Error("update order product", "error", err)
			response.Error(w, http.StatusInternalServerError, "Error updating order product")
			return
		}
	}

	link, err := c.links.FindByID(id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("update order product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating order product")
		return
	}
	response.OK(w, link)
}

// Delete removes every link for the given customerOrderId. Always 204,
// whether or not any links existed.
func (c *OrderProductController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.links.DeleteByOrderID(router.Param(r, "id")); err != nil {
		logger.WithCtx(r.Context()).Error("delete order products", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting order products")
		return
	}
	response.NoContent(w)
}
