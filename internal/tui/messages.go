package tui

import "github.com/tinytelemetry/slides/internal/model"

// generationDoneMsg carries the outcome of a finished generation call.
type generationDoneMsg struct {
	req     model.GenerationRequest
	outcome model.Outcome
}

// sessionRefreshedMsg reports a document session status refresh.
type sessionRefreshedMsg struct{ err error }

// exportDoneMsg reports a markdown export or artifact download.
type exportDoneMsg struct {
	kind string
	path string
	err  error
}
