package models

import (
	"strings"
	"time"
)

type PropertyType string

const (
	PropertyResidential PropertyType = "RESIDENTIAL"
	PropertyCondo       PropertyType = "CONDO"
)

func ParsePropertyType(s string) (PropertyType, bool) {
	switch PropertyType(strings.ToUpper(strings.TrimSpace(s))) {
	case PropertyResidential:
		return PropertyResidential, true
	case PropertyCondo:
		return PropertyCondo, true
	}
	return "", false
}

type Home struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Address      string       `gorm:"size:255;not null" json:"address"`
	City         string       `gorm:"size:100;index;not null" json:"city"`
	Price        float64      `gorm:"not null" json:"price"`
	LandSize     float64      `json:"land_size"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	PropertyType PropertyType `gorm:"size:20;index" json:"property_type"`

	RealtorID uint `gorm:"index;not null" json:"realtor_id"`
	Realtor   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Image rows are owned by the service layer: bulk-created with the home,
	// bulk-deleted before the home row. No DB cascade is relied upon.
	Images []Image `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
