package dto

import (
	"github.com/ymestates/realty/internal/api/validation"
	"github.com/ymestates/realty/internal/database/models"
)

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

func (r CreateContactRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Email is invalid"
	}
	if r.Message == "" {
		errors["message"] = "Message is required"
	}

	return errors
}

type CreateInquiryRequest struct {
	PropertyID string `json:"property_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message"`
}

func (r CreateInquiryRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Email is invalid"
	}
	if r.Message == "" {
		errors["message"] = "Message is required"
	}
	if r.PropertyID != "" && !validation.IsValidUUID(r.PropertyID) {
		errors["property_id"] = "Property id is invalid"
	}

	return errors
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) ValidateContact() map[string]string {
	errors := make(map[string]string)
	if !models.ContactStatus(r.Status).Valid() {
		errors["status"] = "Invalid status"
	}
	return errors
}

func (r UpdateStatusRequest) ValidateInquiry() map[string]string {
	errors := make(map[string]string)
	if !models.InquiryStatus(r.Status).Valid() {
		errors["status"] = "Invalid status"
	}
	return errors
}

type TeamMemberRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Photo    string `json:"photo,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

func (r TeamMemberRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.Role == "" {
		errors["role"] = "Role is required"
	}
	if r.Email != "" && !validation.IsValidEmail(r.Email) {
		errors["email"] = "Email is invalid"
	}

	return errors
}

// UpdateTeamMemberRequest updates only provided fields.
type UpdateTeamMemberRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Photo    *string `json:"photo,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
}

type SocialsRequest struct {
	Instagram []string `json:"instagram"`
	YouTube   []string `json:"youtube"`
	Facebook  []string `json:"facebook"`
}
