package tasks

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type names
const (
	TypeInquiryNotify = "notify:inquiry"
	TypeContactNotify = "notify:contact"
)

// InquiryNotifyPayload identifies the inquiry the agency should be told about.
type InquiryNotifyPayload struct {
	InquiryID uuid.UUID `json:"inquiry_id"`
}

func NewInquiryNotifyTask(payload InquiryNotifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInquiryNotify, data), nil
}

// ContactNotifyPayload identifies the contact message to notify about.
type ContactNotifyPayload struct {
	ContactID uuid.UUID `json:"contact_id"`
}

func NewContactNotifyTask(payload ContactNotifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeContactNotify, data), nil
}
