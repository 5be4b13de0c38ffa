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

type ContactHandler struct {
	db          *gorm.DB
	asynqClient *asynq.Client
	logger      *slog.Logger
}

func NewContactHandler(db *gorm.DB, asynqClient *asynq.Client, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{db: db, asynqClient: asynqClient, logger: logger}
}

// Create accepts a public contact-form submission.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	contact := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: middleware.ClientIP(r),
		Status:    models.ContactStatusNew,
	}

	if err := h.db.WithContext(r.Context()).Create(&contact).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to send message"))
		return
	}

	h.enqueueNotify(contact.ID)

	resp := dto.OK(contact)
	resp.Message = "Your message has been sent successfully. We will get back to you soon!"
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var contacts []models.Contact
	err := h.db.WithContext(r.Context()).
		Order("created_at DESC").
		Find(&contacts).Error
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load messages"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OKList(contacts, len(contacts)))
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.Err("Message not found"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}
	if errs := req.ValidateContact(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	var contact models.Contact
	if err := h.db.WithContext(r.Context()).First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, dto.Err("Message not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to load message"))
		return
	}

	contact.Status = models.ContactStatus(req.Status)
	if err := h.db.WithContext(r.Context()).Save(&contact).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to update message"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(contact))
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.Err("Message not found"))
		return
	}

	result := h.db.WithContext(r.Context()).Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to delete message"))
		return
	}
	if result.RowsAffected == 0 {
		writeJSON(w, http.StatusNotFound, dto.Err("Message not found"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OKMessage("Message deleted"))
}

// enqueueNotify is best effort; a queue outage must not fail the submission.
func (h *ContactHandler) enqueueNotify(contactID uuid.UUID) {
	if h.asynqClient == nil {
		return
	}
	task, err := tasks.NewContactNotifyTask(tasks.ContactNotifyPayload{ContactID: contactID})
	if err != nil {
		h.logger.Warn("failed to build contact notify task", "error", err)
		return
	}
	if _, err := h.asynqClient.Enqueue(task); err != nil {
		h.logger.Warn("failed to enqueue contact notification", "error", err, "contact_id", contactID)
	}
}
