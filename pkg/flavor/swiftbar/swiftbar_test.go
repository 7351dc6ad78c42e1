package swiftbar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manifold/bitbar/pkg/menu"
	"github.com/manifold/bitbar/pkg/menu/attr"
)

func checked(t *testing.T, build string) SwiftBar {
	t.Setenv("SWIFTBAR_BUILD", build)
	s, ok := Check()
	require.True(t, ok)
	return s
}

func TestCheck(t *testing.T) {
	t.Run("detects swiftbar from the environment", func(t *testing.T) {
		s := checked(t, "410")
		assert.Equal(t, 410, s.Build())
	})

	t.Run("absent or bogus build means not swiftbar", func(t *testing.T) {
		t.Setenv("SWIFTBAR_BUILD", "")
		_, ok := Check()
		assert.False(t, ok)

		t.Setenv("SWIFTBAR_BUILD", "beta")
		_, ok = Check()
		assert.False(t, ok)
	})
}

func TestPluginName(t *testing.T) {
	s := checked(t, "410")

	t.Run("file name of the plugin path", func(t *testing.T) {
		t.Setenv("SWIFTBAR_PLUGIN_PATH", "/Users/me/plugins/weather.5m.o")
		name, err := s.PluginName()
		require.NoError(t, err)
		assert.Equal(t, "weather.5m.o", name)
	})

	t.Run("unset path", func(t *testing.T) {
		t.Setenv("SWIFTBAR_PLUGIN_PATH", "")
		_, err := s.PluginName()
		assert.ErrorIs(t, err, ErrNoPluginPath)
	})
}

func TestRunningVersion(t *testing.T) {
	s := checked(t, "410")

	t.Run("valid version", func(t *testing.T) {
		t.Setenv("SWIFTBAR_VERSION", "1.4.3")
		v, err := s.RunningVersion()
		require.NoError(t, err)
		assert.Equal(t, "1.4.3", v)
	})

	t.Run("unset version", func(t *testing.T) {
		t.Setenv("SWIFTBAR_VERSION", "")
		_, err := s.RunningVersion()
		assert.ErrorIs(t, err, ErrNoVersion)
	})

	t.Run("invalid version", func(t *testing.T) {
		t.Setenv("SWIFTBAR_VERSION", "latest")
		_, err := s.RunningVersion()
		assert.Error(t, err)
	})
}

func TestThemedColor(t *testing.T) {
	s := checked(t, "410")
	light, err := attr.ParseColor("#ffffff")
	require.NoError(t, err)
	dark, err := attr.ParseColor("#000000")
	require.NoError(t, err)

	c := s.ThemedColor(light, dark)
	assert.Equal(t, "#ffffff,#000000", c.String())
}

func TestSFImage(t *testing.T) {
	s := checked(t, "410")

	t.Run("renders as sfimage", func(t *testing.T) {
		item := menu.Text("x")
		s.SFImage(item, "sparkles")
		assert.Equal(t, "x | sfimage=sparkles\n", menu.New(item).String())
	})

	t.Run("replaces a prior symbol", func(t *testing.T) {
		item := menu.Text("x")
		s.SFImage(item, "sun.max")
		s.SFImage(item, "moon")
		assert.Equal(t, "x | sfimage=moon\n", menu.New(item).String())
	})
}

func TestNotification(t *testing.T) {
	s := checked(t, "410")
	t.Setenv("SWIFTBAR_PLUGIN_PATH", "/plugins/weather.5m.o")

	t.Run("url carries the configured fields", func(t *testing.T) {
		n, err := s.Notification()
		require.NoError(t, err)
		n.Title("Weather").Body("Rain incoming").Silent()

		u := n.URL()
		assert.Equal(t, "swiftbar", u.Scheme)
		assert.Equal(t, "notify", u.Host)

		q := u.Query()
		assert.Equal(t, "weather.5m.o", q.Get("plugin"))
		assert.Equal(t, "Weather", q.Get("title"))
		assert.Equal(t, "Rain incoming", q.Get("body"))
		assert.Equal(t, "true", q.Get("silent"))
	})

	t.Run("command expands to bash params", func(t *testing.T) {
		cmd, err := attr.Exec("/bin/echo", "hi")
		require.NoError(t, err)

		n, err := s.Notification()
		require.NoError(t, err)
		_, err = n.Command(cmd)
		require.NoError(t, err)

		q := n.URL().Query()
		assert.Equal(t, "/bin/echo", q.Get("bash"))
		assert.Equal(t, "hi", q.Get("param1"))
		assert.Equal(t, "false", q.Get("terminal"))
	})

	t.Run("relative href is rejected", func(t *testing.T) {
		n, err := s.Notification()
		require.NoError(t, err)

		_, err = n.Href("not a url")
		assert.ErrorIs(t, err, menu.ErrRelativeURL)
		assert.Empty(t, n.URL().Query().Get("href"))

		_, err = n.Href("https://example.com/details")
		assert.NoError(t, err)
	})

	t.Run("command needs build 402", func(t *testing.T) {
		old := checked(t, "390")
		t.Setenv("SWIFTBAR_PLUGIN_PATH", "/plugins/weather.5m.o")
		n, err := old.Notification()
		require.NoError(t, err)

		cmd, err := attr.Exec("/bin/echo")
		require.NoError(t, err)
		_, err = n.Command(cmd)
		assert.ErrorIs(t, err, ErrNotificationCommand)
	})
}

func TestStream(t *testing.T) {
	feed := func(menus ...menu.Menu) <-chan menu.Menu {
		ch := make(chan menu.Menu, len(menus))
		for _, m := range menus {
			ch <- m
		}
		close(ch)
		return ch
	}

	t.Run("trailing separator on modern builds", func(t *testing.T) {
		s := checked(t, "399")
		var buf bytes.Buffer
		require.NoError(t, s.Stream(&buf, feed(menu.New(menu.Text("a")), menu.New(menu.Text("b")))))
		assert.Equal(t, "a\n~~~\nb\n~~~\n", buf.String())
	})

	t.Run("leading separator on older builds", func(t *testing.T) {
		s := checked(t, "398")
		var buf bytes.Buffer
		require.NoError(t, s.Stream(&buf, feed(menu.New(menu.Text("a")))))
		assert.Equal(t, "~~~\na\n", buf.String())
	})
}
