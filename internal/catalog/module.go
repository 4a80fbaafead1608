package catalog

// MinApprovalScore is the minimum number of correct answers required to pass
// a module's quiz. It is an absolute count, not a percentage, and applies
// uniformly to every module in the catalog.
const MinApprovalScore = 6

// Question is a single multiple-choice quiz question.
type Question struct {
	Prompt  string
	Options []string
	Correct int // index into Options of the right answer
}

// Module is one training module: instructional content plus its quiz.
// Modules are design-time content, loaded once and read-only thereafter.
type Module struct {
	Key       string
	Label     string
	Summary   string
	Content   []string
	Questions []Question
	Aliases   []string // human-entered service name variants, as authored
}
