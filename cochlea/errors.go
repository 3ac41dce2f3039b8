package cochlea

import "fmt"

var (
	// Input validation errors
	ErrEmptyPrompt = fmt.Errorf("missing or empty prompt")

	// Language model errors
	ErrResponseParse = fmt.Errorf("model response is not valid JSON")

	// Catalog errors
	ErrAuthConfig    = fmt.Errorf("spotify credentials not configured")
	ErrTokenExchange = fmt.Errorf("spotify token exchange failed")
	ErrCatalogSearch = fmt.Errorf("spotify search failed")
)
