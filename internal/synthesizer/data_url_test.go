package synthesizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDataURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "data:image/png;base64,AAAA", want: "AAAA"},
		{in: "data:image/png;base64,AA,AA", want: "AA,AA"},
		{in: "AAAA", want: "AAAA"},
		{in: "data:no-comma", want: "data:no-comma"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripDataURL(tt.in))
		})
	}
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AAAA", DataURL("image/png", "AAAA"))
}

func TestPlaceholderImage_IsDataURL(t *testing.T) {
	assert.Equal(t, "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==", StripDataURL(PlaceholderImage))
}
