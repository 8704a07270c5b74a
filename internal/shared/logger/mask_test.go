package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	testCases := []struct {
		email    string
		expected string
	}{
		{"jean.dupont@example.com", "j***@example.com"},
		{"élodie@example.fr", "é***@example.fr"},
		{"@example.com", "***@example.com"},
		{"not-an-email", "***@***"},
		{"a@b@example.com", "***@***"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, MaskEmail(tc.email), tc.email)
	}
}

func TestMaskName(t *testing.T) {
	assert.Equal(t, "Ada L.", MaskName("Ada", "Lovelace"))
	assert.Equal(t, "Émile Z.", MaskName("Émile", " Zola"))
	assert.Equal(t, "Ada", MaskName("Ada", ""))
}
