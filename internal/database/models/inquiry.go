package models

import "github.com/google/uuid"

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Inquiry is a buyer question about a listing. Anonymous submissions are
// allowed; UserID is set only when the caller was authenticated.
type Inquiry struct {
	Base
	PropertyID *uuid.UUID    `gorm:"type:uuid;index" json:"property_id,omitempty"`
	UserID     *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name       string        `gorm:"not null" json:"name"`
	Email      string        `gorm:"not null" json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Message    string        `gorm:"not null" json:"message"`
	Status     InquiryStatus `gorm:"not null;default:'new'" json:"status"`

	// Relationships
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusClosed:
		return true
	}
	return false
}
