// Package swiftbar exposes SwiftBar-specific plugin features: themed
// colors, SF Symbols images, notifications and streamed menus. Obtain
// a handle with Check; features gated on newer SwiftBar builds return
// errors on older ones.
package swiftbar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"golang.org/x/mod/semver"

	"github.com/manifold/bitbar/pkg/menu"
	"github.com/manifold/bitbar/pkg/menu/attr"
)

var (
	ErrNoPluginPath = errors.New("missing SWIFTBAR_PLUGIN_PATH environment variable")
	ErrNoFileName   = errors.New("no file name in SWIFTBAR_PLUGIN_PATH environment variable")
	ErrBadFileName  = errors.New("plugin file name is not valid UTF-8")
	ErrNoVersion    = errors.New("missing SWIFTBAR_VERSION environment variable")
)

// SwiftBar is a handle for SwiftBar-specific features. Its presence
// proves the plugin is running under SwiftBar.
type SwiftBar struct {
	build int
}

// Check reports whether the plugin is running under SwiftBar, by
// looking for the SWIFTBAR_BUILD environment variable.
func Check() (SwiftBar, bool) {
	build, err := strconv.Atoi(os.Getenv("SWIFTBAR_BUILD"))
	if err != nil {
		return SwiftBar{}, false
	}
	return SwiftBar{build: build}, true
}

// Build returns the running SwiftBar build number.
func (s SwiftBar) Build() int {
	return s.build
}

// PluginName returns the plugin's file name, including refresh
// interval and extension, as used in swiftbar: URLs.
func (s SwiftBar) PluginName() (string, error) {
	path := os.Getenv("SWIFTBAR_PLUGIN_PATH")
	if path == "" {
		return "", ErrNoPluginPath
	}
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return "", ErrNoFileName
	}
	if !utf8.ValidString(name) {
		return "", ErrBadFileName
	}
	return name, nil
}

// RunningVersion returns the running SwiftBar version string after
// validating it as a semantic version.
func (s SwiftBar) RunningVersion() (string, error) {
	v := os.Getenv("SWIFTBAR_VERSION")
	if v == "" {
		return "", ErrNoVersion
	}
	if !semver.IsValid("v" + v) {
		return "", fmt.Errorf("SWIFTBAR_VERSION %q is not a valid semantic version", v)
	}
	return v, nil
}

// Params builds command params without BitBar's element limit, which
// SwiftBar does not share.
func (s SwiftBar) Params(argv ...string) (attr.Params, error) {
	return attr.NewParams(argv...)
}

// ThemedColor returns a color that renders as light in the light
// system theme and dark in the dark theme.
func (s SwiftBar) ThemedColor(light, dark attr.Color) attr.Color {
	d := dark.Light
	if dark.Dark != nil {
		d = *dark.Dark
	}
	return attr.Color{Light: light.Light, Dark: &d}
}

// SFImage puts an SF Symbols image on a menu item.
func (s SwiftBar) SFImage(item *menu.ContentItem, name string) {
	attrsFor(item).SFImage = name
}
