package generation

// Generation service wire contract.
//
//   POST /api/generate-presentation
//
//   Request   {"session_id": string, "topic": string (omitted when unset), "max_slides": int}
//   Response  {"status": "success" | other, "message": string, "presentation_url": string?,
//              "slides": [{"title": string, "content": [string]}], "slide_count": int,
//              "api_used": bool, "fallback_used": bool, "title": string?}
//
// Any status other than "success" is a failure regardless of the HTTP status.
// Error bodies may carry the diagnostic in "message" or in "detail".

// StatusSuccess is the only response status treated as success.
const StatusSuccess = "success"

// GeneratePath is the endpoint the client posts to.
const GeneratePath = "/api/generate-presentation"

// Request is the JSON request body.
type Request struct {
	SessionID string  `json:"session_id"`
	Topic     *string `json:"topic,omitempty"`
	MaxSlides int     `json:"max_slides"`
}

// Response is the JSON response body. Pointer fields distinguish absent
// values from zero values so defaults can be applied in one place.
type Response struct {
	Status          string      `json:"status"`
	Message         string      `json:"message,omitempty"`
	Detail          string      `json:"detail,omitempty"`
	PresentationURL *string     `json:"presentation_url,omitempty"`
	Slides          []WireSlide `json:"slides,omitempty"`
	SlideCount      *int        `json:"slide_count,omitempty"`
	APIUsed         bool        `json:"api_used"`
	FallbackUsed    bool        `json:"fallback_used"`
	Title           *string     `json:"title,omitempty"`
}

// WireSlide is one slide on the wire.
type WireSlide struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}
