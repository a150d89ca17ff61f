package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"taskflow/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC), `"2025-06-02T15:30:00Z"`},
		{"offset is normalised", time.Date(2025, 6, 2, 17, 30, 0, 0, time.FixedZone("CEST", 2*3600)), `"2025-06-02T15:30:00Z"`},
		{"zero", time.Time{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
