package dev

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/scalameta/docsite/internal/site"
	"github.com/scalameta/docsite/pkg/footer"
	"github.com/scalameta/docsite/pkg/vdom"
)

// DefaultDebounce is the quiet period after the last file event before the
// configuration is reloaded.
const DefaultDebounce = 200 * time.Millisecond

// ReloadStatus is the outcome of a reload attempt.
type ReloadStatus string

const (
	// ReloadApplied means the new configuration changed the footer.
	ReloadApplied ReloadStatus = "applied"

	// ReloadUnchanged means the new configuration was valid but produced
	// the same footer.
	ReloadUnchanged ReloadStatus = "unchanged"

	// ReloadFailed means the file could not be loaded; the previous
	// configuration stays active.
	ReloadFailed ReloadStatus = "failed"
)

// Event describes a reload that listeners should react to.
type Event struct {
	Status  ReloadStatus
	Config  site.Config
	Patches []vdom.Patch
	Err     error
}

// HolderOption configures a ConfigHolder.
type HolderOption func(*ConfigHolder)

// WithDebounce sets the debounce window of the file watcher.
func WithDebounce(d time.Duration) HolderOption {
	return func(h *ConfigHolder) { h.debounce = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) HolderOption {
	return func(h *ConfigHolder) { h.logger = l.With("component", "config") }
}

// ConfigHolder holds the site configuration and reloads it from disk.
// Reads are safe for concurrent use.
type ConfigHolder struct {
	mu      sync.RWMutex
	current site.Config
	path    string

	debounce time.Duration
	logger   *slog.Logger

	listenersMu sync.RWMutex
	listeners   []func(Event)
	observers   []func(ReloadStatus)
}

// NewConfigHolder creates a holder for an already loaded configuration.
// The configuration's Path is the file that is reloaded and watched.
func NewConfigHolder(initial *site.Config, opts ...HolderOption) *ConfigHolder {
	h := &ConfigHolder{
		current:  *initial,
		path:     initial.Path(),
		debounce: DefaultDebounce,
		logger:   slog.Default().With("component", "config"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Get returns the current configuration.
func (h *ConfigHolder) Get() site.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Path returns the watched configuration file.
func (h *ConfigHolder) Path() string {
	return h.path
}

// Subscribe registers fn to be called after a reload that changed the
// footer or failed. Callbacks run on the reloading goroutine.
func (h *ConfigHolder) Subscribe(fn func(Event)) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// Observe registers fn to see the status of every reload attempt,
// including those that leave the footer unchanged.
func (h *ConfigHolder) Observe(fn func(ReloadStatus)) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.observers = append(h.observers, fn)
}

// Reload loads and validates the configuration file. On failure the
// previous configuration is kept and the error is returned.
func (h *ConfigHolder) Reload(_ context.Context) (Event, error) {
	next, err := site.LoadFile(h.path)
	if err != nil {
		h.logger.Error("config reload failed", "path", h.path, "error", err)
		ev := Event{Status: ReloadFailed, Config: h.Get(), Err: err}
		h.observe(ev, true)
		return ev, fmt.Errorf("reload %s: %w", h.path, err)
	}

	h.mu.Lock()
	prev := h.current
	h.current = *next
	h.mu.Unlock()

	patches := vdom.Diff(
		footer.Render(prev, prev.Links()),
		footer.Render(*next, next.Links()),
	)
	ev := Event{Status: ReloadApplied, Config: *next, Patches: patches}
	if len(patches) == 0 {
		ev.Status = ReloadUnchanged
		h.logger.Info("config reloaded, footer unchanged", "path", h.path)
		h.observe(ev, false)
		return ev, nil
	}

	h.logger.Info("config reloaded", "path", h.path, "patches", len(patches))
	h.observe(ev, true)
	return ev, nil
}

func (h *ConfigHolder) observe(ev Event, notify bool) {
	h.listenersMu.RLock()
	observers := append([]func(ReloadStatus){}, h.observers...)
	listeners := append([]func(Event){}, h.listeners...)
	h.listenersMu.RUnlock()

	for _, fn := range observers {
		fn(ev.Status)
	}
	if !notify {
		return
	}
	for _, fn := range listeners {
		fn(ev)
	}
}

// StartWatcher watches the configuration file and reloads it after each
// burst of writes. The directory is watched rather than the file so that
// editors which replace the file on save keep triggering reloads. The
// watcher stops when ctx is cancelled.
func (h *ConfigHolder) StartWatcher(ctx context.Context) error {
	if h.path == "" {
		return fmt.Errorf("config holder has no file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	h.logger.Info("watching config file", "path", h.path)
	go h.watchLoop(ctx, watcher)
	return nil
}

func (h *ConfigHolder) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	target := filepath.Clean(h.path)
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("config watcher stopped")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			h.logger.Debug("config file changed", "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(h.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				_, _ = h.Reload(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error("config watcher error", "error", err)
		}
	}
}
