package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "storage form", input: "2023-01-01", want: "2023-01-01"},
		{name: "surrounding spaces", input: "  2023-02-03 ", want: "2023-02-03"},
		{name: "RFC3339", input: "2023-05-06T10:11:12Z", want: "2023-05-06"},
		{name: "slashes", input: "2023/12/31", want: "2023-12-31"},
		{name: "long form", input: "Sun Jan 01 2023", want: "2023-01-01"},
		{name: "month name", input: "March 4, 2024", want: "2024-03-04"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "impossible day", input: "2023-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLong(t *testing.T) {
	assert.Equal(t, "Sun Jan 01 2023", Long("2023-01-01"))
	assert.Equal(t, "Thu Jan 01 1970", Long(Epoch))
	assert.Equal(t, "not-a-date", Long("not-a-date"))
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.February, 29, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*60*60))
	assert.Equal(t, "2024-03-01", Today(now))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange("2023-01-01", "2023-01-01", "2023-12-31"))
	assert.True(t, InRange("2023-12-31", "2023-01-01", "2023-12-31"))
	assert.False(t, InRange("2022-12-31", "2023-01-01", "2023-12-31"))
	assert.False(t, InRange("2024-01-01", "2023-01-01", "2023-12-31"))
}
