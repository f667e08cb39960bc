package types

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		give    string
		want    Interval
		wantErr bool
	}{
		{give: "1m", want: Interval1m},
		{give: "4h", want: Interval4h},
		{give: "1d", want: Interval1d},
		{give: "7m", wantErr: true},
		{give: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			got, err := ParseInterval(tt.give)
			if tt.wantErr {
				assert.EqualError(t, err, fmt.Sprintf("unsupported interval %q", tt.give))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterval_Duration(t *testing.T) {
	assert.Equal(t, 15*time.Minute, Interval15m.Duration())
	assert.Equal(t, 72*time.Hour, Interval3d.Duration())
	assert.Equal(t, time.Duration(0), Interval("2w").Duration())
}

func TestInterval_UnmarshalJSON(t *testing.T) {
	var s struct {
		Interval Interval `json:"interval"`
	}

	err := json.Unmarshal([]byte(`{"interval":"30m"}`), &s)
	require.NoError(t, err)
	assert.Equal(t, Interval30m, s.Interval)
}
