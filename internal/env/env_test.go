package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  Environment
	}{
		{value: "production", want: Production},
		{value: "prod", want: Production},
		{value: "PRODUCTION", want: Production},
		{value: "development", want: Development},
		{value: "staging", want: Development},
		{value: "", want: Development},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv("MODELPATH_ENV", tt.value)
			assert.Equal(t, tt.want, FromEnv())
		})
	}
}
