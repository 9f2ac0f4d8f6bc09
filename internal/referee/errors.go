package referee

import (
	"fmt"
	"strings"
)

// Suggestion is one actionable relaxation of the constraint set, with the
// number of phones it would admit.
type Suggestion struct {
	Description string `json:"description"`
	Impact      int    `json:"impact"`
}

// NoQualifyingError is the structured "no qualifying phones" outcome. It
// is a business result, not a fault: it always carries at least two
// relaxation suggestions so the caller can act on it.
type NoQualifyingError struct {
	Message     string       `json:"message"`
	Suggestions []Suggestion `json:"suggestions"`
}

func (e *NoQualifyingError) Error() string {
	return e.Message
}

// UnknownPhone is one unresolved shortlist id with its closest catalog
// ids by edit distance.
type UnknownPhone struct {
	ID          string   `json:"id"`
	Suggestions []string `json:"suggestions"`
}

// UnknownPhoneError reports every unresolved shortlist id at once, along
// with the ids that did resolve. The overall call still fails to produce
// a comparison.
type UnknownPhoneError struct {
	Missing  []UnknownPhone `json:"missing"`
	Resolved []string       `json:"resolved"`
}

func (e *UnknownPhoneError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		if len(m.Suggestions) > 0 {
			parts = append(parts, fmt.Sprintf("%q (did you mean %s?)", m.ID, strings.Join(m.Suggestions, " or ")))
		} else {
			parts = append(parts, fmt.Sprintf("%q", m.ID))
		}
	}
	return "unknown phone id(s): " + strings.Join(parts, ", ")
}
