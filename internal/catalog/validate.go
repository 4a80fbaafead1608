package catalog

import (
	"fmt"
	"strings"
)

// validateModules performs all structural checks on the given module set.
// Returns a combined error describing all problems found, or nil if valid.
func validateModules(modules []Module) error {
	var errs []string

	keySet := make(map[string]bool, len(modules))
	for _, m := range modules {
		if keySet[m.Key] {
			errs = append(errs, fmt.Sprintf("duplicate module key: %q", m.Key))
		}
		keySet[m.Key] = true

		if m.Key != Normalize(m.Key) {
			errs = append(errs, fmt.Sprintf("module key %q is not in normalized form (want %q)", m.Key, Normalize(m.Key)))
		}
		if m.Label == "" {
			errs = append(errs, fmt.Sprintf("module %q has no label", m.Key))
		}
		if len(m.Content) == 0 {
			errs = append(errs, fmt.Sprintf("module %q has no content", m.Key))
		}

		// A quiz that cannot reach the approval score is a content bug:
		// the module would be impossible to pass.
		if len(m.Questions) < MinApprovalScore {
			errs = append(errs, fmt.Sprintf("module %q has %d questions, fewer than the approval score of %d",
				m.Key, len(m.Questions), MinApprovalScore))
		}

		for i, q := range m.Questions {
			prefix := fmt.Sprintf("module %q question %d", m.Key, i)
			if q.Prompt == "" {
				errs = append(errs, prefix+": empty prompt")
			}
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("%s: correct index %d out of range [0, %d)", prefix, q.Correct, len(q.Options)))
			}
		}
	}

	// Alias sets must be disjoint across modules: a collision would make
	// declaration order silently decide which module wins a lookup.
	aliasOwner := make(map[string]string)
	for _, m := range modules {
		candidates := append([]string{m.Key}, m.Aliases...)
		for _, alias := range candidates {
			normalized := Normalize(alias)
			if normalized == "" {
				errs = append(errs, fmt.Sprintf("module %q alias %q normalizes to an empty string", m.Key, alias))
				continue
			}
			if owner, seen := aliasOwner[normalized]; seen && owner != m.Key {
				errs = append(errs, fmt.Sprintf("alias %q claimed by both %q and %q", normalized, owner, m.Key))
				continue
			}
			aliasOwner[normalized] = m.Key
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
