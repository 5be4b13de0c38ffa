package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ymestates/realty/internal/api/dto"
	"github.com/ymestates/realty/internal/api/middleware"
	"github.com/ymestates/realty/internal/database/models"
	"gorm.io/gorm"
)

type PropertyHandler struct {
	db *gorm.DB
}

func NewPropertyHandler(db *gorm.DB) *PropertyHandler {
	return &PropertyHandler{db: db}
}

// List returns active listings, newest first. Filters left out of the query
// string are not applied.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := dto.ParsePropertyFilters(r.URL.Query())

	q := h.db.WithContext(r.Context()).
		Where("is_active = ?", true).
		Preload("Owner").
		Order("created_at DESC")

	if filters.City != "" {
		q = q.Where("LOWER(address_city) LIKE ?", "%"+strings.ToLower(filters.City)+"%")
	}
	if filters.PropertyType != "" {
		q = q.Where("property_type = ?", filters.PropertyType)
	}
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.Bedrooms != nil {
		q = q.Where("feature_bedrooms = ?", *filters.Bedrooms)
	}
	if filters.MinPrice != nil {
		q = q.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q = q.Where("price <= ?", *filters.MaxPrice)
	}

	var properties []models.Property
	if err := q.Find(&properties).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load properties"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OKList(properties, len(properties)))
}

// Featured returns up to six featured active listings.
func (h *PropertyHandler) Featured(w http.ResponseWriter, r *http.Request) {
	var properties []models.Property
	err := h.db.WithContext(r.Context()).
		Where("is_featured = ? AND is_active = ?", true, true).
		Preload("Owner").
		Order("created_at DESC").
		Limit(6).
		Find(&properties).Error
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load properties"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OKList(properties, len(properties)))
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.Err("Property not found"))
		return
	}

	var property models.Property
	err = h.db.WithContext(r.Context()).
		Preload("Owner").
		First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, dto.Err("Property not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load property"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(property))
}

// Create inserts a listing owned by the caller. The owner always comes from
// the authenticated identity; nothing in the payload can override it.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	if callerID == uuid.Nil {
		writeJSON(w, http.StatusUnauthorized, dto.Err("Access denied"))
		return
	}

	var req dto.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	status := models.PropertyStatus(req.Status)
	if req.Status == "" {
		status = models.PropertyStatusSale
	}
	country := req.Address.Country
	if country == "" {
		country = "India"
	}

	property := models.Property{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		PropertyType: models.PropertyType(req.PropertyType),
		Status:       status,
		Address: models.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: country,
		},
		Location:   models.Location{Lat: req.Location.Lat, Lng: req.Location.Lng},
		Features:   models.Features(req.Features),
		Amenities:  req.Amenities,
		Images:     req.Images,
		OwnerID:    callerID,
		IsFeatured: req.IsFeatured,
		IsActive:   true,
	}

	if err := h.db.WithContext(r.Context()).Create(&property).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to create property"))
		return
	}

	writeJSON(w, http.StatusCreated, dto.OK(property))
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	property, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	applyPropertyUpdate(property, req)

	if err := h.db.WithContext(r.Context()).Save(property).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to update property"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(property))
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	property, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	if err := h.db.WithContext(r.Context()).Delete(property).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to delete property"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OKMessage("Property deleted"))
}

// loadOwned fetches the target listing and enforces the ownership rule:
// not-found is reported before any authorization decision, then only the
// owner or an admin may proceed.
func (h *PropertyHandler) loadOwned(w http.ResponseWriter, r *http.Request) (*models.Property, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.Err("Property not found"))
		return nil, false
	}

	var property models.Property
	err = h.db.WithContext(r.Context()).First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, dto.Err("Property not found"))
			return nil, false
		}
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load property"))
		return nil, false
	}

	callerID := middleware.GetUserID(r.Context())
	callerRole := middleware.GetUserRole(r.Context())
	if property.OwnerID != callerID && callerRole != models.RoleAdmin {
		writeJSON(w, http.StatusForbidden, dto.Err("Not authorized to modify this property"))
		return nil, false
	}

	return &property, true
}

func applyPropertyUpdate(p *models.Property, req dto.UpdatePropertyRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.PropertyType != nil {
		p.PropertyType = models.PropertyType(*req.PropertyType)
	}
	if req.Status != nil {
		p.Status = models.PropertyStatus(*req.Status)
	}
	if req.Address != nil {
		p.Address = models.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: req.Address.Country,
		}
	}
	if req.Location != nil {
		p.Location = models.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}
	if req.Features != nil {
		p.Features = models.Features(*req.Features)
	}
	if req.Amenities != nil {
		p.Amenities = *req.Amenities
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}
