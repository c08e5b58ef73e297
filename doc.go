// Package govterm provides an in-memory VT100/VT220-style terminal
// emulator: feed it the bytes a program would write to a real terminal,
// and query the resulting grid of cells, cursor position and pen state.
//
// # Quick Start
//
// Build a Vt and feed it ANSI sequences:
//
//	vt := govterm.New(80, 24)
//	vt.FeedString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(vt.Text()[0]) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Vt]: the concurrency-safe facade combining a [Parser] and a [Terminal]
//   - [Parser]: the VT500-series input state machine
//   - [Terminal]: the interpreter that applies decoded [Function]s
//   - [Buffer]: a 2D grid of [Line]s with scrollback support
//   - [Line]: a row of [Cell]s, flagged when it wraps into the next row
//   - [Cell]: a character, its display width, and its [Pen]
//
// # Building a Vt
//
// [New] covers the common case: a fixed-size terminal with unbounded
// scrollback. Functional [Option]s configure the rest:
//
//	vt := govterm.New(80, 24,
//	    govterm.WithScrollbackLimit(10000),
//	    govterm.WithResizable(),
//	)
//
// # Feeding Input
//
// Feed accepts one rune at a time; FeedString decodes a whole chunk. Both
// return a [Changes] value describing what to redraw:
//
//	changes := vt.FeedString(output)
//	for _, row := range changes.DirtyRows {
//	    render(vt.View()[row])
//	}
//	if changes.Resized {
//	    redrawEverything()
//	}
//
// Scrollback lines evicted by the feed (once scrollback exceeds its limit)
// are returned in Changes.Scrollback, oldest first, so callers can archive
// them before they are gone for good.
//
// # Buffers
//
// A Vt holds two buffers: primary (scrollback-enabled) and alternate (used
// by full-screen programs like vim or less, cleared on entry, discarded on
// exit). Applications switch between them with CSI ?1049h/l and friends;
// [Vt.View] and [Vt.Lines] always report whichever buffer is active.
//
// # Resizing
//
// On a Vt built [WithResizable], [Vt.Resize] changes the terminal's
// dimensions, reflowing wrapped lines to
// the new width and growing or shrinking the view to the new height,
// keeping the cursor on screen where possible.
//
// # Dump and Replay
//
// [Vt.Dump] renders an escape sequence that, fed to a fresh Vt of the same
// size, reproduces the current screen, cursor, pen and mode state exactly -
// useful for snapshotting a session and resuming it elsewhere.
//
// # Thread Safety
//
// Vt's methods are safe for concurrent use; a single RWMutex serializes
// writes (Feed, FeedString, Resize) against reads (View, Lines, Cursor,
// Dump). Parser and Terminal themselves are not safe for concurrent use on
// their own - use Vt unless you are embedding them in your own facade.
package govterm
