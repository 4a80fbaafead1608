package catalog

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "limpeza", "limpeza"},
		{"uppercase", "LIMPEZA", "limpeza"},
		{"diacritics stripped", "Limpeza Básica", "limpeza_basica"},
		{"cedilla", "Serviços Gerais", "servicos_gerais"},
		{"multi word", "Lavagem de Carro", "lavagem_de_carro"},
		{"punctuation collapsed", "lava---jato!!", "lava_jato"},
		{"leading trailing junk", "  pintura  ", "pintura"},
		{"digits kept", "eletrica 220v", "eletrica_220v"},
		{"mixed separators", "montagem/de_móveis", "montagem_de_moveis"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Limpeza Básica",
		"Lavagem de Carro",
		"  pões & cafés  ",
		"já_normalizado",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
