// internal/domain/models/listing.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DetailFields are the listing attributes that arrive as JSON-encoded arrays
// inside multipart form fields.
var DetailFields = []string{"interiorDetails", "outdoorDetails", "utilities", "otherFeatures"}

// Listing is a property offered on the site.
//
// Images and PDFFile hold filenames inside the upload directory. The detail
// groups are free-form JSON arrays supplied by the admin UI.
type Listing struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	PropertyType string             `bson:"property_type,omitempty" json:"propertyType,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"` // sale | rent
	Price        float64            `bson:"price" json:"price"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	State        string             `bson:"state,omitempty" json:"state,omitempty"`
	Zip          string             `bson:"zip,omitempty" json:"zip,omitempty"`
	Country      string             `bson:"country,omitempty" json:"country,omitempty"`
	Bedrooms     int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int                `bson:"bathrooms" json:"bathrooms"`
	Area         float64            `bson:"area" json:"area"`
	YearBuilt    int                `bson:"year_built,omitempty" json:"yearBuilt,omitempty"`

	Images  []string `bson:"images" json:"images"`
	PDFFile string   `bson:"pdf_file,omitempty" json:"pdfFile,omitempty"`

	InteriorDetails []any `bson:"interior_details,omitempty" json:"interiorDetails,omitempty"`
	OutdoorDetails  []any `bson:"outdoor_details,omitempty" json:"outdoorDetails,omitempty"`
	Utilities       []any `bson:"utilities,omitempty" json:"utilities,omitempty"`
	OtherFeatures   []any `bson:"other_features,omitempty" json:"otherFeatures,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
