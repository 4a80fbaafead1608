package catalog

import (
	"strings"
	"testing"
)

// makeValidModule returns a module that passes every structural check.
func makeValidModule(key string, aliases ...string) Module {
	questions := make([]Question, MinApprovalScore)
	for i := range questions {
		questions[i] = Question{
			Prompt:  "pergunta",
			Options: []string{"a", "b", "c"},
			Correct: 1,
		}
	}
	return Module{
		Key:       key,
		Label:     "Label",
		Summary:   "Summary",
		Content:   []string{"conteúdo"},
		Questions: questions,
		Aliases:   aliases,
	}
}

func TestValidateModules_EmbeddedDataPasses(t *testing.T) {
	modules, err := loadModules(modulesJSON)
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if err := validateModules(modules); err != nil {
		t.Fatalf("embedded catalog validation failed: %v", err)
	}
}

func TestValidateModules_DetectsDuplicateKey(t *testing.T) {
	modules := []Module{makeValidModule("a"), makeValidModule("a")}
	err := validateModules(modules)
	if err == nil {
		t.Fatal("expected error for duplicate key, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateModules_DetectsUnnormalizedKey(t *testing.T) {
	m := makeValidModule("Chave Errada")
	err := validateModules([]Module{m})
	if err == nil {
		t.Fatal("expected error for unnormalized key, got nil")
	}
	if !strings.Contains(err.Error(), "normalized") {
		t.Errorf("error should mention normalization, got: %v", err)
	}
}

func TestValidateModules_DetectsCorrectIndexOutOfRange(t *testing.T) {
	m := makeValidModule("a")
	m.Questions[0].Correct = len(m.Questions[0].Options)
	err := validateModules([]Module{m})
	if err == nil {
		t.Fatal("expected error for out-of-range correct index, got nil")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error should mention range, got: %v", err)
	}

	m.Questions[0].Correct = -1
	if err := validateModules([]Module{m}); err == nil {
		t.Fatal("expected error for negative correct index, got nil")
	}
}

func TestValidateModules_DetectsTooFewOptions(t *testing.T) {
	m := makeValidModule("a")
	m.Questions[0].Options = []string{"só uma"}
	m.Questions[0].Correct = 0
	err := validateModules([]Module{m})
	if err == nil {
		t.Fatal("expected error for single-option question, got nil")
	}
	if !strings.Contains(err.Error(), "options") {
		t.Errorf("error should mention options, got: %v", err)
	}
}

func TestValidateModules_DetectsImpossibleQuiz(t *testing.T) {
	m := makeValidModule("a")
	m.Questions = m.Questions[:MinApprovalScore-1]
	err := validateModules([]Module{m})
	if err == nil {
		t.Fatal("expected error for quiz below approval score, got nil")
	}
	if !strings.Contains(err.Error(), "approval score") {
		t.Errorf("error should mention approval score, got: %v", err)
	}
}

func TestValidateModules_DetectsAliasCollision(t *testing.T) {
	a := makeValidModule("a", "Serviço Comum")
	b := makeValidModule("b", "serviço comum")
	err := validateModules([]Module{a, b})
	if err == nil {
		t.Fatal("expected error for alias collision, got nil")
	}
	if !strings.Contains(err.Error(), "claimed by both") {
		t.Errorf("error should mention the collision, got: %v", err)
	}
}

func TestValidateModules_AllowsRepeatedAliasWithinModule(t *testing.T) {
	m := makeValidModule("a", "apelido", "Apelido")
	if err := validateModules([]Module{m}); err != nil {
		t.Errorf("same alias repeated within one module should be fine, got: %v", err)
	}
}
