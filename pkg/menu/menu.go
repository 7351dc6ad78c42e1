package menu

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/manifold/bitbar/pkg/menu/attr"
)

// ErrRelativeURL is returned when an href conversion is given a URL
// without a scheme.
var ErrRelativeURL = errors.New("href requires an absolute URL")

// Menu is an ordered list of items, rendered top to bottom. The zero
// value is an empty menu.
type Menu struct {
	Items []Item
}

// New returns a menu containing the given items.
func New(items ...Item) Menu {
	return Menu{Items: items}
}

// Add appends items to the bottom of the menu.
func (m *Menu) Add(items ...Item) {
	m.Items = append(m.Items, items...)
}

// Item is a single menu line: either Sep or a *ContentItem.
type Item interface {
	render(w *writer, alternate bool)
}

// Separator renders as the literal line "---".
type Separator struct{}

// Sep is the separator item.
var Sep = Separator{}

// FlavorAttrs contributes host-flavor-specific parameters to a
// rendered item. Implementations write their key/value pairs into the
// map; keys are emitted in sorted order with the base attributes.
type FlavorAttrs interface {
	ContributeParams(params map[string]string)
}

// ContentItem is a menu item that carries visible text and optional
// attributes. Construct with Text and chain setters on the result;
// each setter replaces any prior value for that attribute. All fields
// are fixed before rendering and never mutated by the renderer.
type ContentItem struct {
	text    string
	href    string
	color   *attr.Color
	font    string
	size    *int
	cmd     *attr.Command
	refresh bool
	image   *attr.Image
	flavor  FlavorAttrs

	// alternate-mode item and submenu share one slot
	alt *ContentItem
	sub *Menu
}

// Text returns a new item with the given text. Any "|" renders as "¦"
// and newlines render as spaces.
func Text(text string) *ContentItem {
	return &ContentItem{text: text}
}

// Sub attaches a submenu, replacing any alternate item.
func (i *ContentItem) Sub(items ...Item) *ContentItem {
	m := New(items...)
	i.sub = &m
	i.alt = nil
	return i
}

// Alt attaches an alternate-mode item, shown in place of this one
// while the option key is held. Replaces any submenu.
func (i *ContentItem) Alt(alt *ContentItem) *ContentItem {
	i.alt = alt
	i.sub = nil
	return i
}

// Href makes the item open a URL when clicked. The raw string must
// parse as an absolute URL.
func (i *ContentItem) Href(raw string) (*ContentItem, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return i, err
	}
	if !u.IsAbs() {
		return i, fmt.Errorf("%q: %w", raw, ErrRelativeURL)
	}
	i.href = u.String()
	return i, nil
}

// Color sets the item's text color.
func (i *ContentItem) Color(c attr.Color) *ContentItem {
	i.color = &c
	return i
}

// ColorString sets the item's text color from a hex string.
func (i *ContentItem) ColorString(s string) (*ContentItem, error) {
	c, err := attr.ParseColor(s)
	if err != nil {
		return i, err
	}
	return i.Color(c), nil
}

// Font sets the item's text font.
func (i *ContentItem) Font(name string) *ContentItem {
	i.font = name
	return i
}

// Size sets the item's font point size. Negative sizes are ignored
// and leave any prior value in place.
func (i *ContentItem) Size(pt int) *ContentItem {
	if pt < 0 {
		return i
	}
	i.size = &pt
	return i
}

// Command makes the item run a command when clicked.
func (i *ContentItem) Command(cmd attr.Command) *ContentItem {
	i.cmd = &cmd
	return i
}

// Refresh makes a click re-invoke the plugin.
func (i *ContentItem) Refresh() *ContentItem {
	i.refresh = true
	return i
}

// Image attaches an image, replacing any prior image or template
// image.
func (i *ContentItem) Image(img attr.Image) *ContentItem {
	i.image = &img
	return i
}

// TemplateImage attaches img as a template image, whatever its
// template flag says.
func (i *ContentItem) TemplateImage(img attr.Image) *ContentItem {
	return i.Image(img.AsTemplate())
}

// SetFlavorAttrs attaches a host-flavor attribute payload.
func (i *ContentItem) SetFlavorAttrs(fa FlavorAttrs) *ContentItem {
	i.flavor = fa
	return i
}

// FlavorAttrs returns the attached flavor payload, or nil.
func (i *ContentItem) FlavorAttrs() FlavorAttrs {
	return i.flavor
}
