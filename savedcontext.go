package govterm

// SavedContext is the snapshot captured by DECSC/SC and restored by
// DECRC/RC, and separately tracked per screen buffer so switching to the
// alternate screen and back restores each side's own state.
type SavedContext struct {
	CursorCol    int
	CursorRow    int
	Pen          Pen
	OriginMode   OriginMode
	AutoWrapMode bool
}

// OriginMode determines whether cursor addressing is relative to the
// scroll region (Relative) or the whole screen (Absolute).
type OriginMode uint8

const (
	OriginAbsolute OriginMode = iota
	OriginRelative
)

// defaultSavedContext is the value used at construction and after a hard
// reset: origin (0,0), default pen, absolute origin mode, auto-wrap on.
func defaultSavedContext() SavedContext {
	return SavedContext{OriginMode: OriginAbsolute, AutoWrapMode: true}
}
