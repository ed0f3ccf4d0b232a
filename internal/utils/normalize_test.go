package utils_test

import (
	"testing"

	"github.com/dvergara/finanzas-service/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Visa Santander", "visa santander"},
		{" visa  santánder ", "visa santander"},
		{"TARJETA  Naranja", "tarjeta naranja"},
		{"Préstamo Ñuñoa", "prestamo nunoa"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.NormalizeTitle(tt.in), "input %q", tt.in)
	}
}
