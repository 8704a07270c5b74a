package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mediaForm struct {
	Type  string `json:"type" binding:"required,mediatype"`
	Email string `json:"email" binding:"omitempty,email"`
}

func TestMediaTypeValidation(t *testing.T) {
	require.NoError(t, RegisterAll())

	testCases := []struct {
		name    string
		form    mediaForm
		valid   bool
		field   string
		message string
	}{
		{name: "cd", form: mediaForm{Type: "CD"}, valid: true},
		{name: "lower case book", form: mediaForm{Type: "book"}, valid: true},
		{name: "board game", form: mediaForm{Type: "BOARD_GAME"}, valid: true},
		{name: "unknown", form: mediaForm{Type: "VINYL"}, field: "type", message: "Media type must be one of CD, DVD, BOOK, BOARD_GAME."},
		{name: "missing", form: mediaForm{}, field: "type", message: "This field is required."},
		{name: "bad email", form: mediaForm{Type: "CD", Email: "nope"}, field: "email", message: "Enter a valid email address."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.form)
			if tc.valid {
				assert.NoError(t, err)
				return
			}

			resp, ok := ToErrorResponse(err)
			require.True(t, ok)
			assert.Equal(t, "ERROR-001", resp.Code)
			assert.Equal(t, tc.field, resp.Field)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}
