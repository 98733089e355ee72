package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDistance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "kilometers with space", input: "5 km", want: 5000, ok: true},
		{name: "kilometers without space", input: "2km", want: 2000, ok: true},
		{name: "decimal kilometers", input: "1.5 km", want: 1500, ok: true},
		{name: "uppercase units", input: "3 KM", want: 3000, ok: true},
		{name: "meters with space", input: "750 m", want: 750, ok: true},
		{name: "meters without space", input: "500m", want: 500, ok: true},
		{name: "bare number", input: "500", want: 500, ok: true},
		{name: "bare decimal", input: "250.7", want: 250, ok: true},
		{name: "leading whitespace", input: "  900 m", want: 900, ok: true},
		{name: "not a distance", input: "abc", want: 0, ok: false},
		{name: "empty", input: "", want: 0, ok: false},
		{name: "units only", input: "km", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDistance(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
