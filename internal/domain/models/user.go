// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered site account.
//
// PasswordHash holds a bcrypt hash, never the plaintext. ResetToken and
// ResetExpires are set by the forgot-password flow and cleared once the
// token is used.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FName        string             `bson:"fname" json:"fname"`
	LName        string             `bson:"lname" json:"lname"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Username     string             `bson:"username,omitempty" json:"username,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profileImage,omitempty"`

	ResetToken   string     `bson:"reset_token,omitempty" json:"-"`
	ResetExpires *time.Time `bson:"reset_expires,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// PublicUser is the projection of a User that is safe to return to clients.
type PublicUser struct {
	ID           string `json:"id"`
	FName        string `json:"fname"`
	LName        string `json:"lname"`
	Email        string `json:"email"`
	Username     string `json:"username,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Public returns the client-facing projection of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID.Hex(),
		FName:        u.FName,
		LName:        u.LName,
		Email:        u.Email,
		Username:     u.Username,
		Phone:        u.Phone,
		Address:      u.Address,
		ProfileImage: u.ProfileImage,
	}
}
