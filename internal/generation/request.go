package generation

import (
	"strings"

	"github.com/tinytelemetry/slides/internal/model"
	"github.com/tinytelemetry/slides/internal/session"
)

// NewRequest builds a generation request for the document behind gate.
// It fails with a precondition error when no document is loaded, so callers
// never reach the network without one.
func NewRequest(gate *session.Gate, topic string, maxSlides int) (model.GenerationRequest, error) {
	if err := gate.Check(); err != nil {
		return model.GenerationRequest{}, err
	}
	info, _ := gate.Info()
	return model.GenerationRequest{
		SessionID: info.SessionID,
		Topic:     strings.TrimSpace(topic),
		MaxSlides: model.ClampSlides(maxSlides),
	}, nil
}

// toWire converts a request to its JSON body. An unset topic is omitted.
func toWire(req model.GenerationRequest) Request {
	out := Request{
		SessionID: req.SessionID,
		MaxSlides: req.MaxSlides,
	}
	if topic := strings.TrimSpace(req.Topic); topic != "" {
		out.Topic = &topic
	}
	return out
}
