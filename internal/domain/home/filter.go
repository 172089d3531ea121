package home

import "github.com/homevista/realtor-api/internal/models"

// Filter is a composed predicate over the homes table. Zero values mean
// "no constraint on that field"; the price bounds are inclusive and
// independently optional.
type Filter struct {
	City         string
	PropertyType models.PropertyType
	PriceGte     *float64
	PriceLte     *float64
}

type CreateParams struct {
	Address      string
	City         string
	Price        float64
	LandSize     float64
	Bedrooms     int
	Bathrooms    int
	PropertyType models.PropertyType
	ImageURLs    []string
}

// UpdateParams carries field-level changes; nil leaves the field untouched.
type UpdateParams struct {
	Address      *string
	City         *string
	Price        *float64
	LandSize     *float64
	Bedrooms     *int
	Bathrooms    *int
	PropertyType *models.PropertyType
}
