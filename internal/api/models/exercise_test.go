package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "number", body: `{"duration": 30}`, want: "30"},
		{name: "numeric string", body: `{"duration": "45"}`, want: "45"},
		{name: "text", body: `{"duration": "half an hour"}`, want: "half an hour"},
		{name: "null", body: `{"duration": null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "object", body: `{"duration": {"minutes": 3}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ExerciseRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Duration.String())
		})
	}
}
