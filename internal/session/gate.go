package session

import "github.com/tinytelemetry/slides/internal/model"

// Gate answers whether generation may proceed. It owns no state; readiness is
// read from the injected document session on every call.
type Gate struct {
	session model.DocumentSession
}

// NewGate creates a gate over the given session. A nil session is never ready.
func NewGate(s model.DocumentSession) *Gate {
	return &Gate{session: s}
}

// IsReady reports whether a source document is currently loaded.
func (g *Gate) IsReady() bool {
	return g != nil && g.session != nil && g.session.Active()
}

// Check returns a precondition error when no document is loaded.
func (g *Gate) Check() error {
	if !g.IsReady() {
		return model.PreconditionError("document required", model.ErrNoDocument)
	}
	return nil
}

// Info returns the loaded document's metadata, if any.
func (g *Gate) Info() (model.DocumentInfo, bool) {
	if !g.IsReady() {
		return model.DocumentInfo{}, false
	}
	return g.session.Info(), true
}
