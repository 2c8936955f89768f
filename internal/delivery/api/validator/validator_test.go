package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Kind  string   `json:"kind" validate:"required,oneof=maxWeight lowBattery"`
	Value *float64 `json:"value" validate:"required"`
	Count int      `json:"count,omitempty" validate:"gte=0,lte=10"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()
	one := 1.0

	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{name: "valid", input: sample{Kind: "maxWeight", Value: &one}},
		{name: "missing fields", input: sample{}, wantErr: "kind is required; value is required"},
		{name: "bad kind", input: sample{Kind: "volume", Value: &one}, wantErr: "kind must be one of [maxWeight lowBattery]"},
		{name: "out of range", input: sample{Kind: "lowBattery", Value: &one, Count: 11}, wantErr: "count must be at most 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
