package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed modules.json
var modulesJSON []byte

//go:embed schema.json
var schemaJSON []byte

// catalogFile mirrors the JSON layout of modules.json.
type catalogFile struct {
	Modules []moduleFile `json:"modules"`
}

type moduleFile struct {
	Key       string         `json:"key"`
	Label     string         `json:"label"`
	Summary   string         `json:"summary"`
	Aliases   []string       `json:"aliases"`
	Content   []string       `json:"content"`
	Questions []questionFile `json:"questions"`
}

type questionFile struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// loadModules parses and schema-validates the embedded catalog data.
// Declaration order in the file is preserved; it decides alias lookup order.
func loadModules(data []byte) ([]Module, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	modules := make([]Module, 0, len(file.Modules))
	for _, m := range file.Modules {
		questions := make([]Question, 0, len(m.Questions))
		for _, q := range m.Questions {
			questions = append(questions, Question{
				Prompt:  q.Prompt,
				Options: q.Options,
				Correct: q.Correct,
			})
		}
		modules = append(modules, Module{
			Key:       m.Key,
			Label:     m.Label,
			Summary:   m.Summary,
			Content:   m.Content,
			Questions: questions,
			Aliases:   m.Aliases,
		})
	}
	return modules, nil
}

// compileSchema compiles the embedded JSON Schema for the catalog file.
func compileSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(schemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://catalog.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return compiled, nil
}
