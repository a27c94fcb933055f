package model

// Visibility names the part of the screen that the current state drives
type Visibility int

const (
	// VisibleEmpty shows the placeholder prompt
	VisibleEmpty Visibility = iota

	// VisibleLoading shows the spinner while a lookup is outstanding
	VisibleLoading

	// VisibleError shows the error banner
	VisibleError

	// VisibleResults shows the result cards
	VisibleResults
)

// String returns the string representation of Visibility
func (v Visibility) String() string {
	switch v {
	case VisibleEmpty:
		return "empty"
	case VisibleLoading:
		return "loading"
	case VisibleError:
		return "error"
	case VisibleResults:
		return "results"
	default:
		return "unknown"
	}
}

// ViewState is the whole state of the search screen
type ViewState struct {
	Query   string
	Results []MealRecord
	Loading bool
	Error   string
}

// Visible resolves which part of the screen is shown. Loading wins over
// error, error wins over results, so stale results never show under an error.
func (s ViewState) Visible() Visibility {
	switch {
	case s.Loading:
		return VisibleLoading
	case s.HasError():
		return VisibleError
	case len(s.Results) > 0:
		return VisibleResults
	default:
		return VisibleEmpty
	}
}

// HasError reports whether an error message is set
func (s ViewState) HasError() bool {
	return s.Error != ""
}

// Clone returns a copy that shares no slice storage with s
func (s ViewState) Clone() ViewState {
	out := s
	if s.Results != nil {
		out.Results = make([]MealRecord, len(s.Results))
		copy(out.Results, s.Results)
	}
	return out
}
