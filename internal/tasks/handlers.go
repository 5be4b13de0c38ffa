package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/ymestates/realty/internal/database/models"
	"gorm.io/gorm"
)

// Handler processes notification tasks on the worker. Notifications are
// currently delivered to the structured log; an email or chat integration
// would slot in here without touching the enqueue side.
type Handler struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewHandler(db *gorm.DB, logger *slog.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

func (h *Handler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeInquiryNotify, h.HandleInquiryNotify)
	mux.HandleFunc(TypeContactNotify, h.HandleContactNotify)
}

func (h *Handler) HandleInquiryNotify(ctx context.Context, t *asynq.Task) error {
	var payload InquiryNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	var inquiry models.Inquiry
	err := h.db.WithContext(ctx).
		Preload("Property").
		First(&inquiry, "id = ?", payload.InquiryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Deleted before the worker got to it; nothing to notify about.
			h.logger.Warn("inquiry gone, skipping notification", "inquiry_id", payload.InquiryID)
			return nil
		}
		return fmt.Errorf("loading inquiry: %w", err)
	}

	propertyTitle := ""
	if inquiry.Property != nil {
		propertyTitle = inquiry.Property.Title
	}

	h.logger.Info("new inquiry received",
		"inquiry_id", inquiry.ID,
		"from", inquiry.Email,
		"property", propertyTitle,
	)
	return nil
}

func (h *Handler) HandleContactNotify(ctx context.Context, t *asynq.Task) error {
	var payload ContactNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	var contact models.Contact
	err := h.db.WithContext(ctx).First(&contact, "id = ?", payload.ContactID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.logger.Warn("contact message gone, skipping notification", "contact_id", payload.ContactID)
			return nil
		}
		return fmt.Errorf("loading contact message: %w", err)
	}

	h.logger.Info("new contact message received",
		"contact_id", contact.ID,
		"from", contact.Email,
		"subject", contact.Subject,
	)
	return nil
}
