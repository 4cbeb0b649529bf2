// Package dataset defines dataset references of the form
// collection/name.
package dataset

import (
	"fmt"
	"strings"
)

// Ref identifies a dataset on the remote service.
type Ref struct {
	Collection string
	Name       string
}

// Parse splits a "collection/name" token. Exactly one separator is
// required and both sides must be non-empty.
func Parse(s string) (Ref, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Ref{}, fmt.Errorf("invalid dataset reference %q: want collection/name", s)
	}
	return Ref{Collection: parts[0], Name: parts[1]}, nil
}

func (r Ref) String() string {
	return r.Collection + "/" + r.Name
}
