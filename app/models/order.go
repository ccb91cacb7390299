package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerOrder holds the checkout contact and shipping details.
// DateTime is stamped when the record is created.
type CustomerOrder struct {
	ID          string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null;column:name" json:"name"`
	Lastname    string    `gorm:"size:255;not null;column:lastname" json:"lastname"`
	Phone       string    `gorm:"size:255;not null;column:phone" json:"phone"`
	Email       string    `gorm:"size:255;not null;column:email" json:"email"`
	Company     string    `gorm:"size:255;not null;column:company" json:"company"`
	Adress      string    `gorm:"size:255;not null;column:adress" json:"adress"`
	Apartment   string    `gorm:"size:255;not null;column:apartment" json:"apartment"`
	PostalCode  string    `gorm:"size:255;not null;column:postalCode" json:"postalCode"`
	Status      string    `gorm:"size:255;not null;column:status" json:"status"`
	City        string    `gorm:"size:255;not null;column:city" json:"city"`
	Country     string    `gorm:"size:255;not null;column:country" json:"country"`
	OrderNotice string    `gorm:"size:255;column:orderNotice" json:"orderNotice"`
	Total       float64   `gorm:"not null;column:total" json:"total"`
	DateTime    time.Time `gorm:"column:dateTime" json:"dateTime"`
}

func (CustomerOrder) TableName() string { return "customer_order" }

func (o *CustomerOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.DateTime.IsZero() {
		o.DateTime = time.Now()
	}
	return nil
}

// OrderProduct links one product with a quantity to a customer order.
type OrderProduct struct {
	ID              string         `gorm:"primaryKey;size:36;column:id" json:"id"`
	CustomerOrderID string         `gorm:"size:36;not null;index;column:customerOrderId" json:"customerOrderId"`
	ProductID       string         `gorm:"size:36;not null;index;column:productId" json:"productId"`
	Quantity        int            `gorm:"not null;column:quantity" json:"quantity"`
	CustomerOrder   *CustomerOrder `gorm:"foreignKey:CustomerOrderID" json:"customerOrder,omitempty"`
	Product         *Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderProduct) TableName() string { return "customer_order_product" }

func (op *OrderProduct) BeforeCreate(tx *gorm.DB) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	return nil
}
