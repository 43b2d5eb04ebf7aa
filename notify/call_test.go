package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solareco/domain"
)

func TestValidateE164(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"valid indian number", "+919876543210", true},
		{"valid us number", "+15076291316", true},
		{"missing plus", "919876543210", false},
		{"too short", "+9198765", false},
		{"missing plus and short", "9198765", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateE164(tt.phone)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			}
		})
	}
}
