package swiftbar

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/skratchdot/open-golang/open"

	"github.com/manifold/bitbar/pkg/menu"
	"github.com/manifold/bitbar/pkg/menu/attr"
)

// ErrNotificationCommand is returned when attaching a command to a
// notification on a SwiftBar build that cannot run it.
var ErrNotificationCommand = errors.New("running commands on notification click requires SwiftBar 1.4.3 beta 4 or newer")

// Notification is a SwiftBar notification, delivered by opening a
// swiftbar://notify URL.
type Notification struct {
	swiftbar   SwiftBar
	pluginName string
	title      string
	subtitle   string
	body       string
	href       string
	command    *attr.Command
	silent     bool
}

// Notification creates an empty notification for this plugin.
// Configure it with the chained setters, then call Send.
func (s SwiftBar) Notification() (*Notification, error) {
	name, err := s.PluginName()
	if err != nil {
		return nil, err
	}
	return &Notification{swiftbar: s, pluginName: name}, nil
}

// Title sets the notification title.
func (n *Notification) Title(title string) *Notification {
	n.title = title
	return n
}

// Subtitle sets the notification subtitle.
func (n *Notification) Subtitle(subtitle string) *Notification {
	n.subtitle = subtitle
	return n
}

// Body sets the notification text.
func (n *Notification) Body(body string) *Notification {
	n.body = body
	return n
}

// Href makes the notification open a URL when clicked. The raw string
// must parse as an absolute URL.
func (n *Notification) Href(raw string) (*Notification, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return n, err
	}
	if !u.IsAbs() {
		return n, fmt.Errorf("%q: %w", raw, menu.ErrRelativeURL)
	}
	n.href = u.String()
	return n, nil
}

// Command makes the notification run a command when clicked. Requires
// SwiftBar build 402 or newer.
func (n *Notification) Command(cmd attr.Command) (*Notification, error) {
	if n.swiftbar.build < 402 {
		return n, ErrNotificationCommand
	}
	n.command = &cmd
	return n, nil
}

// Silent disables the notification sound.
func (n *Notification) Silent() *Notification {
	n.silent = true
	return n
}

// URL returns the swiftbar://notify URL that delivers this
// notification.
func (n *Notification) URL() *url.URL {
	q := url.Values{}
	q.Set("plugin", n.pluginName)
	if n.title != "" {
		q.Set("title", n.title)
	}
	if n.subtitle != "" {
		q.Set("subtitle", n.subtitle)
	}
	if n.body != "" {
		q.Set("body", n.body)
	}
	if n.command != nil {
		q.Set("bash", n.command.Params.Cmd)
		for i, arg := range n.command.Params.Args {
			q.Set("param"+strconv.Itoa(i+1), arg)
		}
		if !n.command.Terminal {
			q.Set("terminal", "false")
		}
	}
	if n.href != "" {
		q.Set("href", n.href)
	}
	if n.silent {
		q.Set("silent", "true")
	}
	return &url.URL{Scheme: "swiftbar", Host: "notify", RawQuery: q.Encode()}
}

// Send displays the notification.
func (n *Notification) Send() error {
	return open.Run(n.URL().String())
}
