package generation

import (
	"net/url"
	"strings"

	"github.com/tinytelemetry/slides/internal/model"
)

// diagnostic returns the service-supplied message verbatim, if any.
func (r *Response) diagnostic() string {
	if strings.TrimSpace(r.Message) != "" {
		return r.Message
	}
	if strings.TrimSpace(r.Detail) != "" {
		return r.Detail
	}
	return ""
}

// toOutcome maps a decoded response onto an Outcome, applying the default
// for every optional field. base resolves relative artifact URLs.
func toOutcome(resp *Response, base *url.URL) model.Outcome {
	if resp == nil {
		return model.Failed(model.GenericFailureMessage)
	}
	if resp.Status != StatusSuccess {
		return model.Failed(resp.diagnostic())
	}

	deck := model.Deck{
		Title:  model.DefaultTitle,
		Slides: []model.Slide{},
		Theme:  model.DefaultTheme,
	}
	if resp.Title != nil {
		deck.Title = *resp.Title
	}
	for _, s := range resp.Slides {
		content := s.Content
		if content == nil {
			content = []string{}
		}
		deck.Slides = append(deck.Slides, model.Slide{Title: s.Title, Content: content})
	}
	if resp.SlideCount != nil {
		deck.SlideCount = *resp.SlideCount
	}

	var artifact string
	if resp.PresentationURL != nil {
		artifact = resolveArtifact(base, *resp.PresentationURL)
	}

	return model.Succeeded(deck, artifact, resp.FallbackUsed, resp.diagnostic())
}

// resolveArtifact makes a service-relative artifact reference absolute.
// References that do not parse are passed through unchanged.
func resolveArtifact(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}
	return base.ResolveReference(u).String()
}
