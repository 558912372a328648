package model

// Slide is one generated slide. It is never mutated after generation.
type Slide struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// Deck is the in-memory representation of a generated presentation.
// SlideCount is the count reported by the generation service; Len is the
// number of slides actually present and is what navigation is bounded by.
type Deck struct {
	Title      string
	Slides     []Slide
	SlideCount int
	Theme      string
}

// Len returns the number of slides in the deck.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// GenerationRequest describes one generation attempt.
// An empty Topic means the service derives the title from the source document.
type GenerationRequest struct {
	SessionID string
	Topic     string
	MaxSlides int
}

// DocumentInfo is the descriptive metadata of a loaded source document.
type DocumentInfo struct {
	SessionID string
	FileName  string
	WordCount int
	PageCount int
}

// Outcome is the result of a generation call: either a success carrying a
// Deck, or a failure carrying a user-facing message.
type Outcome struct {
	ok           bool
	Deck         Deck
	ArtifactURL  string // empty = no downloadable artifact
	UsedFallback bool
	Message      string // service message on success, diagnostic on failure
}

// Succeeded builds a successful Outcome.
func Succeeded(deck Deck, artifactURL string, usedFallback bool, message string) Outcome {
	return Outcome{
		ok:           true,
		Deck:         deck,
		ArtifactURL:  artifactURL,
		UsedFallback: usedFallback,
		Message:      message,
	}
}

// Failed builds a failed Outcome.
func Failed(message string) Outcome {
	if message == "" {
		message = GenericFailureMessage
	}
	return Outcome{Message: message}
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool { return o.ok }
