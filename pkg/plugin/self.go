package plugin

import (
	"os"

	"github.com/manifold/bitbar/pkg/menu/attr"
)

// SelfCommand builds Params that re-invoke the current plugin binary
// with the given subcommand, for wiring menu items back to App
// handlers.
func SelfCommand(name string, args ...string) (attr.Params, error) {
	exe, err := os.Executable()
	if err != nil {
		return attr.Params{}, err
	}
	return attr.NewParams(append([]string{exe, name}, args...)...)
}
