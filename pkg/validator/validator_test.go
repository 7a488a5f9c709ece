package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Level string `validate:"oneof=low high"`
	Count int    `validate:"min=0,max=6"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       interface{}
		wantErr  bool
		contains []string
	}{
		{
			name: "valid",
			in:   sample{Name: "a", Level: "low", Count: 6},
		},
		{
			name:     "every failed field is reported",
			in:       sample{Level: "mid", Count: 7},
			wantErr:  true,
			contains: []string{"Field: Name, Tag: required", "Field: Level, Tag: oneof", "Field: Count, Tag: max, Param: 6"},
		},
		{
			name:    "not a struct",
			in:      42,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}
