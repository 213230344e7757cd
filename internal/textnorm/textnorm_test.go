package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"lowercases", "COURRIEL", "courriel"},
		{"strips accents", "Téléphone", "telephone"},
		{"trims", "  code perso  ", "code perso"},
		{"collapses whitespace", "nom   et \t prénom", "nom et prenom"},
		{"mixed", "  Nom et PRÉNOM ", "nom et prenom"},
		{"only whitespace", " \t ", ""},
		{"keeps digits and punctuation", "No de Téléphone:", "no de telephone:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"Téléphone", "  Nom   et Prénom ", "courriel", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
