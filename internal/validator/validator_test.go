package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatIDValidation(t *testing.T) {
	v := NewValidator()

	type request struct {
		SeatIDs []string `validate:"required,min=1,dive,seat_id"`
	}

	tests := []struct {
		name    string
		seatIDs []string
		wantOK  bool
	}{
		{"should accept simple seat ids", []string{"A1", "E8"}, true},
		{"should accept two-digit columns", []string{"B12"}, true},
		{"should reject lowercase rows", []string{"a1"}, false},
		{"should reject missing columns", []string{"A"}, false},
		{"should reject missing rows", []string{"12"}, false},
		{"should reject an empty list", []string{}, false},
		{"should reject junk", []string{"A1", "??"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(request{SeatIDs: tt.seatIDs})

			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
