package errors

import (
	"math"
	"testing"
)

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 25, false},
		{"fraction", 0.5, false},
		{"zero", 0, true},
		{"negative", -2.5, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
		{"negative inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength(ErrCodeInvalidCompartment, "width", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCompartment) {
				t.Errorf("ValidateLength(%v) code = %v, want %v", tt.value, GetCode(err), ErrCodeInvalidCompartment)
			}
		})
	}
}

func TestValidateOffset(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 80, false},
		{"zero", 0, false},
		{"negative", -65, false},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOffset(ErrCodeInvalidRow, "indent", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOffset(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
