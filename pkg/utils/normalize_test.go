package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Radiology  ", "radiology"},
		{"CARDIOLOGIA", "cardiologia"},
		{"Manutenção", "manutencao"},
		{"Département Général", "departement general"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeText(c.in), "input %q", c.in)
	}
}

func TestNormalizeTextTreatsAccentedVariantsAsEqual(t *testing.T) {
	assert.Equal(t, NormalizeText("Pediatría"), NormalizeText("PEDIATRIA"))
}

func TestNormalizeEAN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{" 7891000100103 ", "7891000100103"},
		{"AB 1234 CD", "ab1234cd"},
		{"ab\t12 34", "ab1234"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeEAN(c.in), "input %q", c.in)
	}
}
