package model

import "time"

// Shared defaults used by both the service and the terminal client.
const (
	MinSlides        = 3
	MaxSlides        = 15
	DefaultMaxSlides = 10

	DefaultTitle = "Generated Presentation"
	DefaultTheme = "professional"
	DefaultSkin  = "default"

	GenericFailureMessage = "Failed to generate presentation"

	DefaultRequestTimeout = 2 * time.Minute
)

// ClampSlides bounds n to [MinSlides, MaxSlides].
func ClampSlides(n int) int {
	return max(MinSlides, min(n, MaxSlides))
}
