// internal/domain/models/accountdetails.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountDetails is the extended profile kept alongside a User.
// There is at most one document per UserID (unique index); the User itself
// is not checked for existence.
type AccountDetails struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"userId"`
	FName        string             `bson:"fname" json:"fname"`
	LName        string             `bson:"lname" json:"lname"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
