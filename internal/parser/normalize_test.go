package parser

import "testing"

func TestNormalizeName_DiacriticsAndPunctuation(t *testing.T) {
	t.Parallel()

	if got := NormalizeName("José  DA-Silva"); got != "JOSE DA SILVA" {
		t.Fatalf("got %q", got)
	}
	if NormalizeName("José  DA-Silva") != NormalizeName("JOSE DA SILVA") {
		t.Fatalf("grafias equivalentes deveriam normalizar igual")
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	t.Parallel()

	cases := []string{"João Souza", "MARIA-EDUARDA  çosta", "  ", "ANA", "Conceição"}
	for _, s := range cases {
		once := NormalizeName(s)
		if twice := NormalizeName(once); twice != once {
			t.Fatalf("%q: %q != %q", s, twice, once)
		}
	}
}

func TestNormalizeName_WhitespaceCollapse(t *testing.T) {
	t.Parallel()

	if got := NormalizeName("  PEDRO \n\t LIMA  "); got != "PEDRO LIMA" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeName("!!!"); got != "" {
		t.Fatalf("só pontuação deveria virar vazio, got %q", got)
	}
}
