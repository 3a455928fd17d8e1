// internal/domain/models/review.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a visitor review of a listing. ListingID is a soft reference;
// reviews of a deleted listing are left in place.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ListingID primitive.ObjectID `bson:"listing_id" json:"listingId"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Website   string             `bson:"website" json:"website"`
	Content   string             `bson:"content" json:"content"`
	Date      time.Time          `bson:"date" json:"date"`
}
