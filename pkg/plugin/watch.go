package plugin

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/manifold/bitbar/pkg/logging"
	"github.com/manifold/bitbar/pkg/menu"
)

// Watch renders an initial menu and then a fresh one every time a
// watched path changes, for streamable plugins. A render error
// becomes an error menu rather than ending the stream. The channel
// closes when ctx is done.
func Watch(ctx context.Context, log logging.DebugLogger, paths []string, fn func() (menu.Menu, error)) (<-chan menu.Menu, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	ch := make(chan menu.Menu)
	go func() {
		defer close(ch)
		defer watcher.Close()

		emit := func() {
			m, err := fn()
			if err != nil {
				logging.Debug(log, "watch render:", err)
				m = menu.ErrorMenu(err, nil)
			}
			select {
			case ch <- m:
			case <-ctx.Done():
			}
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Chmod == fsnotify.Chmod {
					continue
				}
				emit()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Debug(log, "watcher error:", err)
			}
		}
	}()
	return ch, nil
}
