// internal/app/features/listings/form.go
package listings

import (
	"net/http"

	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/domain/models"
)

// listingForm is a parsed listing submission. Pointer fields are nil when
// the client did not send them.
type listingForm struct {
	Title        *string
	Description  *string
	PropertyType *string
	Status       *string
	Address      *string
	City         *string
	State        *string
	Zip          *string
	Country      *string

	Price     *float64
	Area      *float64
	Bedrooms  *int
	Bathrooms *int
	YearBuilt *int

	Details map[string][]any
}

// readListingForm reads an already parsed multipart request. Detail groups
// are decoded first: an *uploads.InvalidJSONError is returned as err.
// Field problems are collected in res.
func readListingForm(r *http.Request) (f listingForm, res inputval.Result, err error) {
	f.Details, err = uploads.ParseJSONFields(formutil.Values(r), models.DetailFields...)
	if err != nil {
		return f, res, err
	}

	f.Title = formutil.Optional(r, "title")
	f.Description = formutil.Optional(r, "description")
	f.PropertyType = formutil.Optional(r, "propertyType")
	f.Status = formutil.Optional(r, "status")
	f.Address = formutil.Optional(r, "address")
	f.City = formutil.Optional(r, "city")
	f.State = formutil.Optional(r, "state")
	f.Zip = formutil.Optional(r, "zip")
	f.Country = formutil.Optional(r, "country")

	f.Price = formutil.OptionalFloat(r, "price", "Price", &res)
	f.Area = formutil.OptionalFloat(r, "area", "Area", &res)
	f.Bedrooms = formutil.OptionalInt(r, "bedrooms", "Bedrooms", &res)
	f.Bathrooms = formutil.OptionalInt(r, "bathrooms", "Bathrooms", &res)
	f.YearBuilt = formutil.OptionalInt(r, "yearBuilt", "Year built", &res)

	if f.Title != nil && *f.Title == "" {
		res.Add("title", "Title cannot be empty.")
	}
	if f.Price != nil && *f.Price < 0 {
		res.Add("price", "Price cannot be negative.")
	}
	if f.Area != nil && *f.Area < 0 {
		res.Add("area", "Area cannot be negative.")
	}
	return f, res, nil
}

// listing builds a new document from f and the classified uploads.
func (f listingForm) listing(c uploads.Classification) models.Listing {
	l := models.Listing{
		Title:        str(f.Title),
		Description:  str(f.Description),
		PropertyType: str(f.PropertyType),
		Status:       str(f.Status),
		Address:      str(f.Address),
		City:         str(f.City),
		State:        str(f.State),
		Zip:          str(f.Zip),
		Country:      str(f.Country),
		Images:       c.Images,
		PDFFile:      c.PDF,

		InteriorDetails: f.Details["interiorDetails"],
		OutdoorDetails:  f.Details["outdoorDetails"],
		Utilities:       f.Details["utilities"],
		OtherFeatures:   f.Details["otherFeatures"],
	}
	if f.Price != nil {
		l.Price = *f.Price
	}
	if f.Area != nil {
		l.Area = *f.Area
	}
	if f.Bedrooms != nil {
		l.Bedrooms = *f.Bedrooms
	}
	if f.Bathrooms != nil {
		l.Bathrooms = *f.Bathrooms
	}
	if f.YearBuilt != nil {
		l.YearBuilt = *f.YearBuilt
	}
	return l
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
