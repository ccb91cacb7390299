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

// OrderController serves the /api/orders endpoints.
type OrderController struct {
	orders *repositories.OrderRepository
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{orders: repositories.NewOrderRepository(db)}
}

type createOrderRequest struct {
	Name        string  `json:"name" validate:"required"`
	Lastname    string  `json:"lastname" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Company     string  `json:"company"`
	Adress      string  `json:"adress" validate:"required"`
	Apartment   string  `json:"apartment"`
	PostalCode  string  `json:"postalCode"`
	Status      string  `json:"status" validate:"required"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	OrderNotice string  `json:"orderNotice"`
	Total       float64 `json:"total"`
}

type updateOrderRequest struct {
	Name        *string  `json:"name"`
	Lastname    *string  `json:"lastname"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Company     *string  `json:"company"`
	Adress      *string  `json:"adress"`
	Apartment   *string  `json:"apartment"`
	PostalCode  *string  `json:"postalCode"`
	Status      *string  `json:"status"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	OrderNotice *string  `json:"orderNotice"`
	Total       *float64 `json:"total"`
}

// List returns every customer order.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list orders", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	response.OK(w, orders)
}

// Get returns one order by id.
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.FindByID(router.Param(r, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.WithCtx(r.Context()).Error("get order", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching order")
		return
	}
	response.OK(w, order)
}

// Create inserts an order, stamping dateTime at insertion.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order := models.CustomerOrder{
		Name:        body.Name,
		Lastname:    body.Lastname,
		Phone:       body.Phone,
		Email:       body.Email,
		Company:     body.Company,
		Adress:      body.Adress,
		Apartment:   body.Apartment,
		PostalCode:  body.PostalCode,
		Status:      body.Status,
		City:        body.City,
		Country:     body.Country,
		OrderNotice: body.OrderNotice,
		Total:       body.Total,
	}
	if err := c.orders.Create(&order); err != nil {
		logger.WithCtx(r.Context()).Error("create order", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error creating order")
		return
	}
	response.Created(w, order)
}

// Update applies a partial-field merge to an order.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	var body updateOrderRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.orders.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.WithCtx(r.Context()).Error("update order", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating order")
		return
	}

	fields := map[string]interface{}{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Lastname != nil {
		fields["lastname"] = *body.Lastname
	}
	if body.Phone != nil {
		fields["phone"] = *body.Phone
	}
	if body.Email != nil {
		fields["email"] = *body.Email
	}
	if body.Company != nil {
		fields["company"] = *body.Company
	}
	if body.Adress != nil {
		fields["adress"] = *body.Adress
	}
	if body.Apartment != nil {
		fields["apartment"] = *body.Apartment
	}
	if body.PostalCode != nil {
		fields["postalCode"] = *body.PostalCode
	}
	if body.Status != nil {
		fields["status"] = *body.Status
	}
	if body.City != nil {
		fields["city"] = *body.City
	}
	if body.Country != nil {
		fields["country"] = *body.Country
	}
	if body.OrderNotice != nil {
		fields["orderNotice"] = *body.OrderNotice
	}
	if body.Total != nil {
		fields["total"] = *body.Total
	}

	if len(fields) > 0 {
		if err := c.orders.Update(id, fields); err != nil {
			logger.WithCtx(r.Context()).Error("update order", "error", err)
			response.Error(w, http.StatusInternalServerError, "Error updating order")
			return
		}
	}

	order, err := c.orders.FindByID(id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("update order", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating order")
		return
	}
	response.OK(w, order)
}

// Delete removes an order by id.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	if _, err := c.orders.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.WithCtx(r.Context()).Error("delete order", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting order")
		return
	}

	if err := c.orders.Delete(id); err != nil {
		logger.WithCtx(r.Context()).Error("delete order", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting order")
		return
	}
	response.NoContent(w)
}
