// Package dither converts float samples to integer PCM codes with optional
// dither noise and first-order error feedback.
package dither

import (
	"fmt"
	"strings"
)

// Kind selects the probability distribution of the dither noise.
type Kind int

const (
	// KindNone rounds without added noise.
	KindNone Kind = iota
	// KindRectangular adds uniform noise of one LSB peak-to-peak.
	KindRectangular
	// KindTriangular adds TPDF noise of two LSB peak-to-peak.
	KindTriangular

	kindCount
)

var kindNames = [kindCount]string{"none", "rpdf", "tpdf"}

// String returns the short name of k.
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// ParseKind accepts the names returned by [Kind.String].
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindNone, fmt.Errorf("dither: unknown kind %q", name)
}
