package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind discriminates the workout variants.
type Kind string

const (
	KindRunning Kind = "running"
	KindCycling Kind = "cycling"
)

// ValidKinds is the canonical set of accepted kind strings.
var ValidKinds = map[string]bool{
	string(KindRunning): true,
	string(KindCycling): true,
}

// ParseKind accepts a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	if !ValidKinds[k] {
		return "", &ValidationError{Field: "kind", Reason: fmt.Sprintf("must be one of running, cycling (got %q)", s)}
	}
	return Kind(k), nil
}

// Title returns the capitalized kind, e.g. "Running".
func (k Kind) Title() string {
	return cases.Title(language.English).String(string(k))
}
