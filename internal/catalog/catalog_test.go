package catalog

import "testing"

func TestResolve_ByServiceName(t *testing.T) {
	key, ok := Resolve("Lavagem de Carro", "")
	if !ok {
		t.Fatal("expected a match for service name")
	}
	if key != "lavagem_carro" {
		t.Errorf("Resolve = %q, want %q", key, "lavagem_carro")
	}
}

func TestResolve_ByCategory(t *testing.T) {
	key, ok := Resolve("", "Faxina")
	if !ok {
		t.Fatal("expected a match for category")
	}
	if key != "limpeza_basica" {
		t.Errorf("Resolve = %q, want %q", key, "limpeza_basica")
	}
}

func TestResolve_NamePriorityOverCategory(t *testing.T) {
	// Name resolves to one module, category to another: the name wins.
	key, ok := Resolve("Lava Jato", "Faxina")
	if !ok {
		t.Fatal("expected a match")
	}
	if key != "lavagem_carro" {
		t.Errorf("Resolve = %q, want %q (service name must take priority)", key, "lavagem_carro")
	}
}

func TestResolve_Miss(t *testing.T) {
	if key, ok := Resolve("something unrelated", ""); ok {
		t.Errorf("expected no match, got %q", key)
	}
	if key, ok := Resolve("", ""); ok {
		t.Errorf("expected no match for empty candidates, got %q", key)
	}
	if key, ok := Resolve("???", "!!!"); ok {
		t.Errorf("expected no match for punctuation-only candidates, got %q", key)
	}
}

func TestResolve_FallsThroughToCategory(t *testing.T) {
	key, ok := Resolve("nome sem correspondência", "jardinagem")
	if !ok {
		t.Fatal("expected category fallback to match")
	}
	if key != "jardinagem" {
		t.Errorf("Resolve = %q, want %q", key, "jardinagem")
	}
}

func TestGet_KnownAndUnknown(t *testing.T) {
	m := Get("limpeza_basica")
	if m == nil {
		t.Fatal("expected limpeza_basica to exist")
	}
	if m.Label == "" || len(m.Content) == 0 {
		t.Error("module should carry label and content")
	}
	if len(m.Questions) != 10 {
		t.Errorf("limpeza_basica has %d questions, want 10", len(m.Questions))
	}

	if Get("modulo_inexistente") != nil {
		t.Error("unknown key should return nil, not panic")
	}
}

func TestKeys_DeclarationOrder(t *testing.T) {
	keys := Keys()
	if len(keys) == 0 {
		t.Fatal("catalog should not be empty")
	}
	if keys[0] != "limpeza_basica" {
		t.Errorf("first key = %q, want %q", keys[0], "limpeza_basica")
	}
	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key in Keys(): %q", k)
		}
		seen[k] = true
		if Get(k) == nil {
			t.Errorf("Keys() lists %q but Get returns nil", k)
		}
	}
}

func TestEmbeddedCatalog_MeetsApprovalScore(t *testing.T) {
	for _, m := range All() {
		if len(m.Questions) < MinApprovalScore {
			t.Errorf("module %q has %d questions, below the approval score %d",
				m.Key, len(m.Questions), MinApprovalScore)
		}
	}
}
