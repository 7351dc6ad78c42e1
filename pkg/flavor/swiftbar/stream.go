package swiftbar

import (
	"io"

	"github.com/manifold/bitbar/pkg/menu"
)

// Stream writes a sequence of menus to w for a streamable plugin,
// separated by the "~~~" marker. The plugin's metadata must declare
// type=streamable and useTrailingStreamSeparator=true for builds that
// place the separator after each menu (399 and newer); older builds
// expect it before.
func (s SwiftBar) Stream(w io.Writer, menus <-chan menu.Menu) error {
	trailing := s.build >= 399
	for m := range menus {
		if !trailing {
			if _, err := io.WriteString(w, "~~~\n"); err != nil {
				return err
			}
		}
		if err := m.Render(w); err != nil {
			return err
		}
		if trailing {
			if _, err := io.WriteString(w, "~~~\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
