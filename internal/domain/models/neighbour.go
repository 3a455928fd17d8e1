// internal/domain/models/neighbour.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Neighbour is a point of interest near the properties, shown with a banner
// image and an inner (detail) image.
type Neighbour struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Distance    string             `bson:"distance" json:"distance"`
	Description string             `bson:"description" json:"description"`
	BannerImage string             `bson:"banner_image" json:"banner_image"`
	InnerImage  string             `bson:"inner_image" json:"inner_image"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
