// Package flavor identifies which menu-bar host application is
// running the plugin.
package flavor

import "github.com/manifold/bitbar/pkg/flavor/swiftbar"

// Kind names a supported host implementation.
type Kind int

const (
	// BitBar is the baseline feature set, also reported when the
	// plugin runs outside any known host.
	BitBar Kind = iota
	// SwiftBar supports extra features via the swiftbar package.
	SwiftBar
)

// Flavor is the detected host implementation.
type Flavor struct {
	kind     Kind
	swiftbar swiftbar.SwiftBar
}

// Check detects the running host from its environment variables. Any
// unsupported host is reported as BitBar.
func Check() Flavor {
	if sb, ok := swiftbar.Check(); ok {
		return Flavor{kind: SwiftBar, swiftbar: sb}
	}
	return Flavor{kind: BitBar}
}

// Kind returns the detected host kind.
func (f Flavor) Kind() Kind {
	return f.kind
}

// SwiftBar returns the SwiftBar feature handle when running under
// SwiftBar.
func (f Flavor) SwiftBar() (swiftbar.SwiftBar, bool) {
	return f.swiftbar, f.kind == SwiftBar
}

func (f Flavor) String() string {
	switch f.kind {
	case SwiftBar:
		return "SwiftBar"
	default:
		return "BitBar"
	}
}
