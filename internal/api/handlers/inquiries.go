package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/ymestates/realty/internal/api/dto"
	"github.com/ymestates/realty/internal/api/middleware"
	"github.com/ymestates/realty/internal/database/models"
	"github.com/ymestates/realty/internal/tasks"
	"gorm.io/gorm"
)

type InquiryHandler struct {
	db          *gorm.DB
	asynqClient *asynq.Client
	logger      *slog.Logger
}

func NewInquiryHandler(db *gorm.DB, asynqClient *asynq.Client, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{db: db, asynqClient: asynqClient, logger: logger}
}

// Create accepts an inquiry from anyone. When the request carried a valid
// token the inquiry is linked to that user; anonymous submissions are fine.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	inquiry := models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  models.InquiryStatusNew,
	}

	if req.PropertyID != "" {
		propertyID, err := uuid.Parse(req.PropertyID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, dto.Err("Invalid property id"))
			return
		}
		var property models.Property
		if err := h.db.WithContext(r.Context()).First(&property, "id = ?", propertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				writeJSON(w, http.StatusNotFound, dto.Err("Property not found"))
				return
			}
			writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to submit inquiry"))
			return
		}
		inquiry.PropertyID = &propertyID
	}

	if callerID := middleware.GetUserID(r.Context()); callerID != uuid.Nil {
		inquiry.UserID = &callerID
	}

	if err := h.db.WithContext(r.Context()).Create(&inquiry).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to submit inquiry"))
		return
	}

	h.enqueueNotify(inquiry.ID)

	resp := dto.OK(inquiry)
	resp.Message = "Your inquiry has been submitted successfully!"
	writeJSON(w, http.StatusCreated, resp)
}

func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	var inquiries []models.Inquiry
	err := h.db.WithContext(r.Context()).
		Preload("Property").
		Preload("User").
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load inquiries"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OKList(inquiries, len(inquiries)))
}

func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.Err("Inquiry not found"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}
	if errs := req.ValidateInquiry(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	var inquiry models.Inquiry
	if err := h.db.WithContext(r.Context()).First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, dto.Err("Inquiry not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load inquiry"))
		return
	}

	inquiry.Status = models.InquiryStatus(req.Status)
	if err := h.db.WithContext(r.Context()).Save(&inquiry).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to update inquiry"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(inquiry))
}

func (h *InquiryHandler) enqueueNotify(inquiryID uuid.UUID) {
	if h.asynqClient == nil {
		return
	}
	task, err := tasks.NewInquiryNotifyTask(tasks.InquiryNotifyPayload{InquiryID: inquiryID})
	if err != nil {
		h.logger.Warn("failed to build inquiry notify task", "error", err)
		return
	}
	if _, err := h.asynqClient.Enqueue(task); err != nil {
		h.logger.Warn("failed to enqueue inquiry notification", "error", err, "inquiry_id", inquiryID)
	}
}
