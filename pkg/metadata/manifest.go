// Package metadata embeds plugin metadata into compiled plugin
// binaries. SwiftBar reads it from the com.ameba.SwiftBar extended
// attribute, base64-encoded, in the same comment-tag format script
// plugins carry inline.
package metadata

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// Kind selects the plugin type declared to SwiftBar.
type Kind string

const (
	KindDefault    Kind = ""
	KindStreamable Kind = "streamable"
)

// Manifest is the TOML plugin manifest. Dependencies defaults to "go"
// when left unset; set it to the empty string to omit the tag.
type Manifest struct {
	Title        string  `toml:"title"`
	Version      string  `toml:"version"`
	Author       string  `toml:"author"`
	AuthorGitHub string  `toml:"author-github"`
	Desc         string  `toml:"desc"`
	Image        string  `toml:"image"`
	Dependencies *string `toml:"dependencies"`
	AboutURL     string  `toml:"abouturl"`

	HideAbout         bool   `toml:"hide-about"`
	HideRunInTerminal bool   `toml:"hide-run-in-terminal"`
	HideLastUpdated   bool   `toml:"hide-last-updated"`
	HideDisablePlugin bool   `toml:"hide-disable-plugin"`
	HideSwiftBar      bool   `toml:"hide-swiftbar"`
	Schedule          string `toml:"schedule"`
	RefreshOnOpen     bool   `toml:"refresh-on-open"`
	RunInBash         bool   `toml:"run-in-bash"`
	Type              Kind   `toml:"type"`

	Environment map[string]string `toml:"environment"`
}

// Load parses the manifest file at path.
func Load(fs afero.Fs, path string) (Manifest, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := toml.Unmarshal(b, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Render produces the metadata comment block.
func (m Manifest) Render() []byte {
	var b bytes.Buffer
	tag := func(key, value string) {
		fmt.Fprintf(&b, "# <%s>%s</%s>\n", key, value, key)
	}

	if m.Title != "" {
		tag("bitbar.title", m.Title)
	}
	if m.Version != "" {
		tag("bitbar.version", m.Version)
	}
	if m.Author != "" {
		tag("bitbar.author", m.Author)
	}
	if m.AuthorGitHub != "" {
		tag("bitbar.author.github", m.AuthorGitHub)
	}
	if m.Desc != "" {
		tag("bitbar.desc", m.Desc)
	}
	if m.Image != "" {
		tag("bitbar.image", m.Image)
	}
	deps := "go"
	if m.Dependencies != nil {
		deps = *m.Dependencies
	}
	if deps != "" {
		tag("bitbar.dependencies", deps)
	}
	if m.AboutURL != "" {
		tag("bitbar.abouturl", m.AboutURL)
	}
	if m.HideAbout {
		tag("swiftbar.hideAbout", "true")
	}
	if m.HideRunInTerminal {
		tag("swiftbar.hideRunInTerminal", "true")
	}
	if m.HideLastUpdated {
		tag("swiftbar.hideLastUpdated", "true")
	}
	if m.HideDisablePlugin {
		tag("swiftbar.hideDisablePlugin", "true")
	}
	if m.HideSwiftBar {
		tag("swiftbar.hideSwiftBar", "true")
	}
	if m.Schedule != "" {
		tag("swiftbar.schedule", m.Schedule)
	}
	if m.RefreshOnOpen {
		tag("swiftbar.refreshOnOpen", "true")
	}
	// compiled plugins are not shell scripts
	if !m.RunInBash {
		tag("swiftbar.runInBash", "false")
	}
	if m.Type == KindStreamable {
		tag("swiftbar.type", "streamable")
	}
	if len(m.Environment) > 0 {
		vars := make([]string, 0, len(m.Environment))
		for k := range m.Environment {
			vars = append(vars, k)
		}
		sort.Strings(vars)
		for i, k := range vars {
			vars[i] = k + ":" + m.Environment[k]
		}
		tag("swiftbar.environment", "["+strings.Join(vars, ", ")+"]")
	}
	return b.Bytes()
}
