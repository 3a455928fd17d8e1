// internal/domain/models/upcomingproject.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpcomingProject is a development announced ahead of listing.
type UpcomingProject struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProjectName    string             `bson:"project_name" json:"projectName"`
	Type           string             `bson:"type" json:"type"`
	Address        string             `bson:"address" json:"address"`
	NoOfApartments int                `bson:"no_of_apartments" json:"noOfApartments"`
	Investment     float64            `bson:"investment" json:"investment"`
	File           string             `bson:"file" json:"file"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}
