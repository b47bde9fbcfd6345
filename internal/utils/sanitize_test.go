package utils_test

import (
	"testing"

	"github.com/SscSPs/fx_service/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestTextSanitizer_Sanitize(t *testing.T) {
	s := utils.NewTextSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Euro", "Euro"},
		{"script removed with contents", "<script>alert('x')</script>Euro", "Euro"},
		{"tags stripped", "<b>US</b> Dollar", "US Dollar"},
		{"entities kept as text", "Bosnia & Herzegovina", "Bosnia & Herzegovina"},
		{"whitespace trimmed", "  JPY ", "JPY"},
		{"event handler attribute", `<img src=x onerror="alert(1)">Yen`, "Yen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.input))
		})
	}
}

func TestTextSanitizer_SanitizeAll(t *testing.T) {
	s := utils.NewTextSanitizer()
	assert.Nil(t, s.SanitizeAll(nil))
	assert.Equal(t, []string{"US", "DE"}, s.SanitizeAll([]string{"<i>US</i>", " DE"}))
}
