// internal/domain/models/blog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a news/blog post with a required banner image.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags" json:"tags"`
	BannerImage string             `bson:"banner_image" json:"bannerImage"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
