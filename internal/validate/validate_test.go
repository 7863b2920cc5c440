package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFullName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     bool
	}{
		{"simple name", "Ada Lovelace", true},
		{"single capitalized word", "Ada", true},
		{"middle name", "Tamarai Selvan Ravi", true},
		{"lowercase start", "ada", false},
		{"digit inside", "Ada2", false},
		{"punctuation", "Ada-Lovelace", false},
		{"empty", "", false},
		{"leading space", " Ada", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidFullName(tt.fullName))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "ada@example.com", true},
		{"dots and plus in local part", "a.b+c@example.co", true},
		{"percent and underscore", "a_b%c@mail.example.org", true},
		{"no at sign", "not-an-email", false},
		{"no tld dot", "ada@example", false},
		{"one letter tld", "ada@example.c", false},
		{"digit tld", "ada@example.c0", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        bool
	}{
		{"valid indian mobile", "9876543210", "+91", true},
		{"valid us number", "2125550123", "+1", true},
		{"too short", "123", "+91", false},
		{"letters", "abcdefghij", "+91", false},
		{"empty number", "", "+91", false},
		{"empty code", "9876543210", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhoneNumber(tt.phone, tt.countryCode))
		})
	}
}
