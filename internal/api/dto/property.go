package dto

import (
	"net/url"
	"strconv"

	"github.com/ymestates/realty/internal/database/models"
)

type AddressDTO struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

type FeaturesDTO struct {
	Bedrooms  int  `json:"bedrooms"`
	Bathrooms int  `json:"bathrooms"`
	Area      int  `json:"area"`
	Parking   int  `json:"parking"`
	YearBuilt int  `json:"year_built,omitempty"`
	Furnished bool `json:"furnished"`
}

type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CreatePropertyRequest carries the listing payload. Any owner field the
// client sends is simply not part of this struct: the owner is always the
// authenticated caller.
type CreatePropertyRequest struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        int64        `json:"price"`
	PropertyType string       `json:"property_type"`
	Status       string       `json:"status,omitempty"`
	Address      AddressDTO   `json:"address"`
	Location     LocationDTO  `json:"location"`
	Features     FeaturesDTO  `json:"features"`
	Amenities    []string     `json:"amenities,omitempty"`
	Images       []string     `json:"images,omitempty"`
	IsFeatured   bool         `json:"is_featured,omitempty"`
}

func (r CreatePropertyRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title == "" {
		errors["title"] = "Title is required"
	} else if len(r.Title) > 100 {
		errors["title"] = "Title cannot be more than 100 characters"
	}
	if r.Description == "" {
		errors["description"] = "Description is required"
	} else if len(r.Description) > 2000 {
		errors["description"] = "Description cannot be more than 2000 characters"
	}
	if r.Price < 0 {
		errors["price"] = "Price cannot be negative"
	}
	if r.PropertyType == "" {
		errors["property_type"] = "Property type is required"
	} else if !models.PropertyType(r.PropertyType).Valid() {
		errors["property_type"] = "Invalid property type"
	}
	if r.Status != "" && !models.PropertyStatus(r.Status).Valid() {
		errors["status"] = "Invalid status"
	}
	if r.Address.City == "" {
		errors["address.city"] = "City is required"
	}
	if r.Address.State == "" {
		errors["address.state"] = "State is required"
	}

	return errors
}

// UpdatePropertyRequest updates only the fields the client provides.
type UpdatePropertyRequest struct {
	Title        *string      `json:"title,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Price        *int64       `json:"price,omitempty"`
	PropertyType *string      `json:"property_type,omitempty"`
	Status       *string      `json:"status,omitempty"`
	Address      *AddressDTO  `json:"address,omitempty"`
	Location     *LocationDTO `json:"location,omitempty"`
	Features     *FeaturesDTO `json:"features,omitempty"`
	Amenities    *[]string    `json:"amenities,omitempty"`
	Images       *[]string    `json:"images,omitempty"`
	IsFeatured   *bool        `json:"is_featured,omitempty"`
	IsActive     *bool        `json:"is_active,omitempty"`
}

func (r UpdatePropertyRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title != nil && (*r.Title == "" || len(*r.Title) > 100) {
		errors["title"] = "Title must be 1-100 characters"
	}
	if r.Description != nil && (*r.Description == "" || len(*r.Description) > 2000) {
		errors["description"] = "Description must be 1-2000 characters"
	}
	if r.Price != nil && *r.Price < 0 {
		errors["price"] = "Price cannot be negative"
	}
	if r.PropertyType != nil && !models.PropertyType(*r.PropertyType).Valid() {
		errors["property_type"] = "Invalid property type"
	}
	if r.Status != nil && !models.PropertyStatus(*r.Status).Valid() {
		errors["status"] = "Invalid status"
	}

	return errors
}

// PropertyFilters are the public list filters. Zero values mean the filter
// is not applied.
type PropertyFilters struct {
	City         string
	PropertyType string
	Status       string
	Bedrooms     *int
	MinPrice     *int64
	MaxPrice     *int64
}

func ParsePropertyFilters(q url.Values) PropertyFilters {
	f := PropertyFilters{
		City:         q.Get("city"),
		PropertyType: q.Get("property_type"),
		Status:       q.Get("status"),
	}
	if s := q.Get("bedrooms"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			f.Bedrooms = &n
		}
	}
	if s := q.Get("min_price"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if s := q.Get("max_price"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}
