// internal/domain/models/company.go
package models

import "time"

// CompanyID is the fixed _id of the single company profile document.
const CompanyID = "company"

// Company is the site owner's profile.
type Company struct {
	ID          string    `bson:"_id" json:"_id"`
	Description string    `bson:"description" json:"description"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Address     string    `bson:"address" json:"address"`
	Logo        string    `bson:"logo,omitempty" json:"logo,omitempty"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
