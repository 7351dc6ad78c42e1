package menu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manifold/bitbar/pkg/menu/attr"
)

func TestBuilders(t *testing.T) {
	t.Run("setters replace prior values", func(t *testing.T) {
		item := Text("x").Font("Menlo").Font("Monaco")
		assert.Equal(t, "x | font=Monaco\n", New(item).String())
	})

	t.Run("submenu replaces alternate", func(t *testing.T) {
		item := Text("x").Alt(Text("alt")).Sub(Text("child"))
		assert.Equal(t, "x\n--child\n", New(item).String())
	})

	t.Run("alternate replaces submenu", func(t *testing.T) {
		item := Text("x").Sub(Text("child")).Alt(Text("alt"))
		assert.Equal(t, "x\nalt | alternate=true\n", New(item).String())
	})

	t.Run("size zero renders", func(t *testing.T) {
		assert.Equal(t, "x | size=0\n", New(Text("x").Size(0)).String())
	})

	t.Run("negative size is ignored", func(t *testing.T) {
		assert.Equal(t, "x\n", New(Text("x").Size(-3)).String())
		assert.Equal(t, "x | size=12\n", New(Text("x").Size(12).Size(-3)).String())
	})

	t.Run("template image replaces plain image", func(t *testing.T) {
		item := Text("x").Image(attr.ImageBase64("YQ==")).TemplateImage(attr.ImageBase64("Yg=="))
		assert.Equal(t, "x | templateImage=Yg==\n", New(item).String())
	})

	t.Run("invalid href surfaces a parse error", func(t *testing.T) {
		_, err := Text("x").Href("://nope")
		assert.Error(t, err)
	})

	t.Run("relative href is rejected and not rendered", func(t *testing.T) {
		item := Text("x")
		_, err := item.Href("hello world, not a url")
		assert.ErrorIs(t, err, ErrRelativeURL)
		assert.Equal(t, "x\n", New(item).String())

		_, err = Text("x").Href("/just/a/path")
		assert.ErrorIs(t, err, ErrRelativeURL)
	})

	t.Run("invalid color string surfaces a parse error", func(t *testing.T) {
		_, err := Text("x").ColorString("chartreuse")
		assert.Error(t, err)
	})
}

func TestAdd(t *testing.T) {
	var m Menu
	m.Add(Text("a"))
	m.Add(Sep, Text("b"))
	assert.Equal(t, "a\n---\nb\n", m.String())
}

type menuError struct {
	msg string
}

func (e menuError) Error() string {
	return e.msg
}

func (e menuError) Menu() Menu {
	return New(Text("header"), Text(e.msg))
}

func TestErrorMenu(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		m := ErrorMenu(errors.New("boom"), nil)
		assert.Equal(t, "?\n---\nboom\n", m.String())
	})

	t.Run("error template image on the header", func(t *testing.T) {
		img := attr.ImageBase64("aGk=")
		m := ErrorMenu(errors.New("boom"), &img)
		assert.Equal(t, "? | templateImage=aGk=\n---\nboom\n", m.String())
	})

	t.Run("error supplying its own menu", func(t *testing.T) {
		m := ErrorMenu(menuError{msg: "details"}, nil)
		assert.Equal(t, "?\n---\nheader\ndetails\n", m.String())
	})

	t.Run("wrapped menu errors are unwrapped", func(t *testing.T) {
		err := fmt.Errorf("context: %w", menuError{msg: "inner"})
		m := ErrorMenu(err, nil)
		require.Contains(t, m.String(), "header\ninner\n")
	})
}
