package model

import "context"

// DocumentSession exposes whether a source document is loaded and what it is.
// It is the only view the core has of the surrounding document workflow.
type DocumentSession interface {
	Active() bool
	Info() DocumentInfo
}

// Generator produces a presentation outcome for a request.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) Outcome
}
