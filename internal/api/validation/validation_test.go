package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ymestates/realty/internal/api/validation"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.in",
		"user+tag@example.com",
	}
	for _, email := range valid {
		assert.True(t, validation.IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user @example.com",
	}
	for _, email := range invalid {
		assert.False(t, validation.IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, validation.IsValidUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, validation.IsValidUUID("not-a-uuid"))
	assert.False(t, validation.IsValidUUID(""))
	assert.False(t, validation.IsValidUUID("123e4567e89b12d3a456426614174000"))
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+91 98765 43210",
		"022-2345-6789",
		"9876543210",
	}
	for _, phone := range valid {
		assert.True(t, validation.IsValidPhone(phone), phone)
	}

	invalid := []string{
		"",
		"call me",
		"+",
		"12345",
	}
	for _, phone := range invalid {
		assert.False(t, validation.IsValidPhone(phone), phone)
	}
}

func TestIsImageContentType(t *testing.T) {
	assert.True(t, validation.IsImageContentType("image/png"))
	assert.True(t, validation.IsImageContentType("image/jpeg"))
	assert.False(t, validation.IsImageContentType("text/plain"))
	assert.False(t, validation.IsImageContentType("application/pdf"))
}
