package standalone

// AppState represents the current state of the application
type AppState int

const (
	// StatePoster is the main promo page
	StatePoster AppState = iota
	// StateTerms shows the raffle terms
	StateTerms
	// StateError shows a startup error (corrupted or invalid config)
	StateError
)

// String returns the string representation of the state
func (s AppState) String() string {
	switch s {
	case StatePoster:
		return "Poster"
	case StateTerms:
		return "Terms"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}
