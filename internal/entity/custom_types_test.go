package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPITimeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDay int
		wantErr bool
	}{
		{name: "local date time", input: `"2025-07-01T19:30:00"`, wantDay: 1},
		{name: "fractional seconds", input: `"2025-07-01T19:30:00.123456"`, wantDay: 1},
		{name: "no seconds", input: `"2025-07-01T19:30"`, wantDay: 1},
		{name: "rfc3339", input: `"2025-07-01T19:30:00Z"`, wantDay: 1},
		{name: "null", input: `null`},
		{name: "empty string", input: `""`},
		{name: "garbage", input: `"next tuesday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got APITime
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantDay != 0 {
				assert.Equal(t, tt.wantDay, got.Day())
			}
		})
	}
}

func TestAPITimeMarshalRoundTrip(t *testing.T) {
	var parsed APITime
	require.NoError(t, json.Unmarshal([]byte(`"2025-07-01T19:30:00"`), &parsed))

	out, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-01T19:30:00"`, string(out))

	out, err = json.Marshal(APITime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestBookingCanCancel(t *testing.T) {
	confirmed := &Booking{Status: BookingStatusConfirmed}
	cancelled := &Booking{Status: BookingStatusCancelled}

	assert.True(t, confirmed.CanCancel())
	assert.False(t, cancelled.CanCancel())
}
