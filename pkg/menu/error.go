package menu

import (
	"errors"

	"github.com/manifold/bitbar/pkg/menu/attr"
)

// Menuer is implemented by errors (or any value) that can present
// themselves as a menu.
type Menuer interface {
	Menu() Menu
}

// ErrorMenu converts an error into a displayable menu: a "?" header
// item, a separator, then the error's own menu when it implements
// Menuer, or a single item with its message otherwise. The header
// shows tmpl as a template image when given.
func ErrorMenu(err error, tmpl *attr.Image) Menu {
	header := Text("?")
	if tmpl != nil {
		header.TemplateImage(*tmpl)
	}
	m := New(header, Sep)

	var mr Menuer
	if errors.As(err, &mr) {
		m.Add(mr.Menu().Items...)
	} else {
		m.Add(Text(err.Error()))
	}
	return m
}
