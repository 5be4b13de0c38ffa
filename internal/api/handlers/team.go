package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ymestates/realty/internal/api/dto"
	"github.com/ymestates/realty/internal/database/models"
	"gorm.io/gorm"
)

type TeamHandler struct {
	db *gorm.DB
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{db: db}
}

// List returns team members in the order they were added.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	var members []models.TeamMember
	err := h.db.WithContext(r.Context()).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load team"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OKList(members, len(members)))
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	member := models.TeamMember{
		Name:     req.Name,
		Role:     req.Role,
		Photo:    req.Photo,
		Bio:      req.Bio,
		Email:    req.Email,
		Phone:    req.Phone,
		LinkedIn: req.LinkedIn,
	}

	if err := h.db.WithContext(r.Context()).Create(&member).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to add team member"))
		return
	}

	writeJSON(w, http.StatusCreated, dto.OK(member))
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.Err("Member not found"))
		return
	}

	var member models.TeamMember
	if err := h.db.WithContext(r.Context()).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, dto.Err("Member not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load member"))
		return
	}

	var req dto.UpdateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Photo != nil {
		member.Photo = *req.Photo
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.LinkedIn != nil {
		member.LinkedIn = *req.LinkedIn
	}

	if err := h.db.WithContext(r.Context()).Save(&member).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to update member"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(member))
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.Err("Member not found"))
		return
	}

	result := h.db.WithContext(r.Context()).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to delete member"))
		return
	}
	if result.RowsAffected == 0 {
		writeJSON(w, http.StatusNotFound, dto.Err("Member not found"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OKMessage("Member removed"))
}
