package models

import "github.com/google/uuid"

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypePenthouse  PropertyType = "penthouse"
	PropertyTypeStudio     PropertyType = "studio"
	PropertyTypeOther      PropertyType = "other"
)

type PropertyStatus string

const (
	PropertyStatusSale   PropertyStatus = "sale"
	PropertyStatusRent   PropertyStatus = "rent"
	PropertyStatusSold   PropertyStatus = "sold"
	PropertyStatusRented PropertyStatus = "rented"
)

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `gorm:"not null;index" json:"city"`
	State   string `gorm:"not null" json:"state"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `gorm:"default:'India'" json:"country"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Features struct {
	Bedrooms  int  `json:"bedrooms"`
	Bathrooms int  `json:"bathrooms"`
	Area      int  `json:"area"` // sq ft
	Parking   int  `json:"parking"`
	YearBuilt int  `json:"year_built,omitempty"`
	Furnished bool `json:"furnished"`
}

type Property struct {
	Base
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"not null" json:"description"`
	Price        int64          `gorm:"not null" json:"price"`
	PropertyType PropertyType   `gorm:"not null;index" json:"property_type"`
	Status       PropertyStatus `gorm:"not null;index;default:'sale'" json:"status"`
	Address      Address        `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Location     Location       `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Features     Features       `gorm:"embedded;embeddedPrefix:feature_" json:"features"`
	Amenities    []string       `gorm:"serializer:json" json:"amenities"`
	Images       []string       `gorm:"serializer:json" json:"images"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"owner_id"`
	IsFeatured   bool           `gorm:"default:false;index" json:"is_featured"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`

	// Relationships
	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeVilla,
		PropertyTypeLand, PropertyTypeCommercial, PropertyTypePenthouse,
		PropertyTypeStudio, PropertyTypeOther:
		return true
	}
	return false
}

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusSale, PropertyStatusRent, PropertyStatusSold, PropertyStatusRented:
		return true
	}
	return false
}
