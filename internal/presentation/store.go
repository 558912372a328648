package presentation

import "github.com/tinytelemetry/slides/internal/model"

// Store holds the current presentation, if any. It is owned by the UI event
// loop and is not safe for concurrent use.
type Store struct {
	deck         *model.Deck
	artifactURL  string
	usedFallback bool
	nav          Navigator
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new deck and resets the cursor to the first slide.
func (s *Store) Replace(deck model.Deck, artifactURL string, usedFallback bool) {
	d := deck
	s.deck = &d
	s.artifactURL = artifactURL
	s.usedFallback = usedFallback
	s.nav.reset(d.Len())
}

// Apply stores a successful outcome. Failures leave the store untouched so
// a failed regeneration keeps the previous deck. It reports whether the
// store changed.
func (s *Store) Apply(o model.Outcome) bool {
	if !o.OK() {
		return false
	}
	s.Replace(o.Deck, o.ArtifactURL, o.UsedFallback)
	return true
}

// Clear discards the deck and its ancillary fields.
func (s *Store) Clear() {
	s.deck = nil
	s.artifactURL = ""
	s.usedFallback = false
	s.nav.reset(0)
}

// HasDeck reports whether a presentation is loaded.
func (s *Store) HasDeck() bool { return s.deck != nil }

// Deck returns the current deck.
func (s *Store) Deck() (*model.Deck, bool) {
	return s.deck, s.deck != nil
}

// ArtifactURL returns the downloadable reference; false when there is none
// or no deck is loaded.
func (s *Store) ArtifactURL() (string, bool) {
	if s.deck == nil || s.artifactURL == "" {
		return "", false
	}
	return s.artifactURL, true
}

// UsedFallback reports whether the current deck came from the degraded path.
func (s *Store) UsedFallback() bool {
	return s.deck != nil && s.usedFallback
}

// Navigator returns the cursor bound to the current deck.
func (s *Store) Navigator() *Navigator { return &s.nav }

// CurrentSlide returns the slide under the cursor.
func (s *Store) CurrentSlide() (model.Slide, int, bool) {
	idx, ok := s.nav.Current()
	if !ok || s.deck == nil {
		return model.Slide{}, 0, false
	}
	return s.deck.Slides[idx], idx, true
}
