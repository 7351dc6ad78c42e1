// Package plugin runs a menu-bar plugin: it renders the main menu on
// a plain invocation and dispatches named subcommands when the host
// re-invokes the binary from a clicked menu item.
package plugin

import (
	"fmt"
	"io"
	"os"

	"github.com/manifold/bitbar/pkg/flavor"
	"github.com/manifold/bitbar/pkg/logging"
	"github.com/manifold/bitbar/pkg/menu"
	"github.com/manifold/bitbar/pkg/menu/attr"
)

// CommandFunc handles one named subcommand.
type CommandFunc func(args []string) error

// FallbackFunc handles subcommands with no registered CommandFunc.
type FallbackFunc func(cmd string, args []string) error

// App is a plugin definition. Main produces the menu; Commands maps
// subcommand names to handlers; Fallback, when set, catches unknown
// subcommands. A Main error is rendered with menu.ErrorMenu using
// ErrorTemplateImage for the header.
type App struct {
	Main               func(f flavor.Flavor) (menu.Menu, error)
	Commands           map[string]CommandFunc
	Fallback           FallbackFunc
	ErrorTemplateImage *attr.Image

	Logger logging.DebugLogger

	// overridable for tests
	Args   []string
	Stdout io.Writer
	Exit   func(code int)
	Notify func(title, body string)
}

// Run executes the plugin. With no arguments it renders the main menu
// to stdout. With arguments it dispatches the named subcommand and
// reports any error as a macOS notification before exiting non-zero.
func (a *App) Run() {
	args := a.Args
	if args == nil {
		args = os.Args[1:]
	}

	if len(args) == 0 {
		a.runMain()
		return
	}
	a.runCommand(args[0], args[1:])
}

func (a *App) runMain() {
	m, err := a.Main(flavor.Check())
	if err != nil {
		logging.Debug(a.Logger, "main:", err)
		m = menu.ErrorMenu(err, a.ErrorTemplateImage)
	}
	if err := m.Render(a.stdout()); err != nil {
		logging.Debug(a.Logger, "render:", err)
		a.exit(1)
	}
}

func (a *App) runCommand(name string, args []string) {
	fn, ok := a.Commands[name]
	switch {
	case ok:
		a.report(name, fn(args))
	case a.Fallback != nil:
		a.report(name, a.Fallback(name, args))
	default:
		a.notify(fmt.Sprintf("no such subcommand: %s", name))
		a.exit(1)
	}
}

// report surfaces a subcommand error as a notification, the only
// feedback channel a clicked menu item has.
func (a *App) report(cmd string, err error) {
	if err == nil {
		return
	}
	logging.Debug(a.Logger, cmd+":", err)
	a.notify(fmt.Sprintf("%s: %s", cmd, err))
	a.exit(1)
}

func (a *App) notify(body string) {
	title := pluginTitle()
	if a.Notify != nil {
		a.Notify(title, body)
		return
	}
	if err := notify(title, body); err != nil {
		logging.Debug(a.Logger, "notify:", err)
	}
}

func (a *App) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func (a *App) exit(code int) {
	if a.Exit != nil {
		a.Exit(code)
		return
	}
	os.Exit(code)
}
