package generation

import (
	"strings"
	"time"

	"github.com/tinytelemetry/slides/internal/model"
)

// Severity ranks a user notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Display durations per notice kind. Degraded results stay up longest.
const (
	SuccessNoticeDuration  = 3 * time.Second
	FallbackNoticeDuration = 8 * time.Second
	ErrorNoticeDuration    = 5 * time.Second
	InfoNoticeDuration     = 4 * time.Second
)

// Notice is a transient user-visible message.
type Notice struct {
	Severity Severity
	Text     string
	Duration time.Duration
}

// Classify decides the single notice shown for a generation outcome.
func Classify(o model.Outcome) Notice {
	if !o.OK() {
		return Notice{
			Severity: SeverityError,
			Text:     o.Message,
			Duration: ErrorNoticeDuration,
		}
	}
	if o.UsedFallback {
		text := "Presentation generated in fallback mode (template, not AI)"
		if reason := strings.TrimSpace(o.Message); reason != "" {
			text += ": " + reason
		}
		return Notice{
			Severity: SeverityWarning,
			Text:     text,
			Duration: FallbackNoticeDuration,
		}
	}
	return Notice{
		Severity: SeveritySuccess,
		Text:     "Presentation generated successfully",
		Duration: SuccessNoticeDuration,
	}
}

// PreconditionNotice is shown when generation is attempted without a document.
func PreconditionNotice() Notice {
	return Notice{
		Severity: SeverityWarning,
		Text:     "Please upload a document first (document required)",
		Duration: ErrorNoticeDuration,
	}
}
