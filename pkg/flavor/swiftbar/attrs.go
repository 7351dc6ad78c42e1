package swiftbar

import "github.com/manifold/bitbar/pkg/menu"

// Attrs holds SwiftBar-specific item parameters.
type Attrs struct {
	SFImage string
}

// ContributeParams merges the SwiftBar parameters into an item's
// rendered attribute set.
func (a *Attrs) ContributeParams(params map[string]string) {
	if a.SFImage != "" {
		params["sfimage"] = a.SFImage
	}
}

func attrsFor(item *menu.ContentItem) *Attrs {
	if a, ok := item.FlavorAttrs().(*Attrs); ok {
		return a
	}
	a := &Attrs{}
	item.SetFlavorAttrs(a)
	return a
}
