package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateScore(t *testing.T) {
	tests := []struct {
		date    string
		want    string
		wantErr bool
	}{
		{date: "2023-01-01", want: "20230101"},
		{date: "1970-01-01", want: "19700101"},
		{date: "2023-1-1", wantErr: true},
		{date: "abcd-ef-gh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := dateScore(tt.date)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
