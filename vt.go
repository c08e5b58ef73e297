package govterm

import (
	"context"
	"log/slog"
	"sync"
)

// Changes reports what a Feed/FeedString/Resize call touched: which rows
// need redrawing, whether the dimensions changed, and any scrollback lines
// evicted as a result (primary buffer only).
type Changes struct {
	DirtyRows  []int
	Resized    bool
	Scrollback []Line
}

// Vt is the public, concurrency-safe facade combining a Parser and a
// Terminal. All reads and writes go through a single RWMutex so a Vt value
// can be shared across goroutines (e.g. a feeder and a renderer).
type Vt struct {
	mu       sync.RWMutex
	parser   *Parser
	terminal *Terminal
	logger   *slog.Logger
}

// Option configures a Vt during construction.
type Option func(*vtConfig)

type vtConfig struct {
	scrollbackLimit *int
	resizable       bool
	logger          *slog.Logger
}

// WithScrollbackLimit caps primary-buffer scrollback at n lines; n <= 0
// disables scrollback entirely. Not passing this leaves scrollback
// unbounded.
func WithScrollbackLimit(n int) Option {
	return func(c *vtConfig) {
		if n < 0 {
			n = 0
		}
		c.scrollbackLimit = &n
	}
}

// WithResizable allows XTWINOPS (CSI 8 t) to change the terminal's
// dimensions.
func WithResizable() Option {
	return func(c *vtConfig) {
		c.resizable = true
	}
}

// WithLogger sets the logger consulted for the handful of exceptional
// conditions this package can hit (a Resize to non-positive dimensions).
// Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *vtConfig) {
		c.logger = logger
	}
}

// New builds a Vt of cols x rows, applying opts over the defaults:
// unbounded scrollback, fixed size, discard logger.
func New(cols, rows int, opts ...Option) *Vt {
	cfg := vtConfig{logger: slog.New(discardHandler{})}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Vt{
		parser:   NewParser(),
		terminal: NewTerminal(cols, rows, cfg.scrollbackLimit, cfg.resizable),
		logger:   cfg.logger,
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (discardHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (discardHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return discardHandler{} }
func (discardHandler) WithGroup(_ string) slog.Handler               { return discardHandler{} }

// Feed decodes one rune of input and returns what changed.
func (t *Vt) Feed(r rune) Changes {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.parser.Feed(r, t.terminal)
	return t.drainChanges()
}

// FeedString decodes a chunk of input and returns what changed overall.
func (t *Vt) FeedString(s string) Changes {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.parser.FeedString(s, t.terminal)
	return t.drainChanges()
}

func (t *Vt) drainChanges() Changes {
	checkInvariants(t.terminal)
	rows, resized := t.terminal.Changes()
	return Changes{
		DirtyRows:  rows,
		Resized:    resized,
		Scrollback: t.terminal.GC(),
	}
}

// Resize changes the terminal's dimensions, reflowing its contents. Non-
// positive dimensions are logged and ignored. It has no effect unless the
// Vt was built WithResizable.
func (t *Vt) Resize(cols, rows int) Changes {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cols <= 0 || rows <= 0 {
		t.logger.Warn("govterm: ignoring non-positive resize", "cols", cols, "rows", rows)
		return Changes{}
	}
	t.terminal.Resize(cols, rows)
	return t.drainChanges()
}

// View returns the rows currently on screen.
func (t *Vt) View() []Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Line(nil), t.terminal.View()...)
}

// Lines returns scrollback followed by the view.
func (t *Vt) Lines() []Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Line(nil), t.terminal.Lines()...)
}

// Line returns the nth line of scrollback+view.
func (t *Vt) Line(n int) Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.terminal.Line(n)
}

// Text returns the primary buffer's logical lines as plain strings,
// regardless of which buffer is currently active.
func (t *Vt) Text() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.terminal.Text()
}

// Cursor returns the current cursor position and visibility.
func (t *Vt) Cursor() Cursor {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.terminal.Cursor()
}

// CursorKeyAppMode reports whether DECCKM application mode is active.
func (t *Vt) CursorKeyAppMode() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.terminal.CursorKeyAppMode()
}

// Dump renders a replay sequence that reproduces the current state.
func (t *Vt) Dump() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.terminal.Dump()
}
