// internal/domain/models/checkout.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Checkout is a submitted order. The company fields keep the "compony"
// spelling on the wire because existing clients send and read it.
type Checkout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName      string             `bson:"first_name" json:"firstName"`
	LastName       string             `bson:"last_name" json:"lastName"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	CompanyName    string             `bson:"company_name,omitempty" json:"componyName,omitempty"`
	CompanyAddress string             `bson:"company_address,omitempty" json:"componyAddress,omitempty"`
	Address        string             `bson:"address" json:"address"`
	Country        string             `bson:"country" json:"country"`
	City           string             `bson:"city" json:"city"`
	State          string             `bson:"state" json:"state"`
	Zip            string             `bson:"zip" json:"zip"`
	Message        string             `bson:"message,omitempty" json:"message,omitempty"`
	ItemDetails    []CheckoutItem     `bson:"item_details" json:"itemDetails"`
	TotalPrice     float64            `bson:"total_price" json:"totalPrice"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CheckoutItem is one line of an order.
type CheckoutItem struct {
	ItemID string  `bson:"item_id" json:"itemId"`
	Price  float64 `bson:"price" json:"price"`
}
