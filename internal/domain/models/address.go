// internal/domain/models/address.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a saved postal address, keyed for updates by Email.
type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	Country   string             `bson:"country" json:"country"`
	Zip       string             `bson:"zip" json:"zip"`
}
