// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rmfarias/capacita/ent/answerevent"
	"github.com/rmfarias/capacita/ent/completionevent"
	"github.com/rmfarias/capacita/ent/quizevent"
	"github.com/rmfarias/capacita/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescModuleKey is the schema descriptor for module_key field.
	answereventDescModuleKey := answereventFields[1].Descriptor()
	// answerevent.ModuleKeyValidator is a validator for the "module_key" field. It is called by the builders before save.
	answerevent.ModuleKeyValidator = answereventDescModuleKey.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[3].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescSelectedOption is the schema descriptor for selected_option field.
	answereventDescSelectedOption := answereventFields[4].Descriptor()
	// answerevent.SelectedOptionValidator is a validator for the "selected_option" field. It is called by the builders before save.
	answerevent.SelectedOptionValidator = answereventDescSelectedOption.Validators[0].(func(string) error)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescSessionID is the schema descriptor for session_id field.
	completioneventDescSessionID := completioneventFields[0].Descriptor()
	// completionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	completionevent.SessionIDValidator = completioneventDescSessionID.Validators[0].(func(string) error)
	// completioneventDescModuleKey is the schema descriptor for module_key field.
	completioneventDescModuleKey := completioneventFields[1].Descriptor()
	// completionevent.ModuleKeyValidator is a validator for the "module_key" field. It is called by the builders before save.
	completionevent.ModuleKeyValidator = completioneventDescModuleKey.Validators[0].(func(string) error)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescModuleKey is the schema descriptor for module_key field.
	quizeventDescModuleKey := quizeventFields[1].Descriptor()
	// quizevent.ModuleKeyValidator is a validator for the "module_key" field. It is called by the builders before save.
	quizevent.ModuleKeyValidator = quizeventDescModuleKey.Validators[0].(func(string) error)
	// quizeventDescAction is the schema descriptor for action field.
	quizeventDescAction := quizeventFields[2].Descriptor()
	// quizevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	quizevent.ActionValidator = quizeventDescAction.Validators[0].(func(string) error)
	// quizeventDescScore is the schema descriptor for score field.
	quizeventDescScore := quizeventFields[3].Descriptor()
	// quizevent.DefaultScore holds the default value on creation for the score field.
	quizevent.DefaultScore = quizeventDescScore.Default.(int)
	// quizeventDescTotal is the schema descriptor for total field.
	quizeventDescTotal := quizeventFields[4].Descriptor()
	// quizevent.DefaultTotal holds the default value on creation for the total field.
	quizevent.DefaultTotal = quizeventDescTotal.Default.(int)
	// quizeventDescPassed is the schema descriptor for passed field.
	quizeventDescPassed := quizeventFields[5].Descriptor()
	// quizevent.DefaultPassed holds the default value on creation for the passed field.
	quizevent.DefaultPassed = quizeventDescPassed.Default.(bool)
}
