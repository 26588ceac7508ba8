package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Date string `validate:"omitempty,isodate"`
}

func TestIsoDate(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantTag string
	}{
		{name: "valid", in: sample{Name: "run", Date: "2023-01-01"}},
		{name: "omitted date", in: sample{Name: "run"}},
		{name: "bad date", in: sample{Name: "run", Date: "soon"}, wantTag: "isodate"},
		{name: "missing name", in: sample{Date: "2023-01-01"}, wantTag: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().Struct(tt.in)
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.wantTag, verrs[0].Tag())
		})
	}
}
