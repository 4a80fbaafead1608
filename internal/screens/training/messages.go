package training

// completionSavedMsg is sent when the async completion write finishes.
type completionSavedMsg struct {
	Err error
}
