package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ymestates/realty/internal/api/dto"
	"github.com/ymestates/realty/internal/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialsHandler manages the single social-links record. There is exactly
// one row, keyed by a fixed identifier; writes upsert it.
type SocialsHandler struct {
	db *gorm.DB
}

func NewSocialsHandler(db *gorm.DB) *SocialsHandler {
	return &SocialsHandler{db: db}
}

func (h *SocialsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var socials models.Socials
	err := h.db.WithContext(r.Context()).
		First(&socials, "identifier = ?", models.SocialsIdentifier).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load socials"))
			return
		}
		// First read creates the empty record.
		socials = models.Socials{
			Identifier: models.SocialsIdentifier,
			Instagram:  []string{},
			YouTube:    []string{},
			Facebook:   []string{},
		}
		if err := h.db.WithContext(r.Context()).Create(&socials).Error; err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load socials"))
			return
		}
	}

	writeJSON(w, http.StatusOK, dto.OK(socials))
}

// Upsert replaces the social links. Posting the same payload twice leaves a
// single identical record; last writer wins.
func (h *SocialsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.SocialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	socials := models.Socials{
		Identifier: models.SocialsIdentifier,
		Instagram:  emptyIfNil(req.Instagram),
		YouTube:    emptyIfNil(req.YouTube),
		Facebook:   emptyIfNil(req.Facebook),
	}

	err := h.db.WithContext(r.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identifier"}},
			DoUpdates: clause.AssignmentColumns([]string{"instagram", "you_tube", "facebook", "updated_at"}),
		}).
		Create(&socials).Error
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to save socials"))
		return
	}

	// Re-read so the response reflects the stored row, including timestamps.
	if err := h.db.WithContext(r.Context()).
		First(&socials, "identifier = ?", models.SocialsIdentifier).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load socials"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(socials))
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
