package govterm

// Cursor tracks the write position. Col may legally equal the buffer's
// column count, the deferred-wrap sentinel position, but only while the
// terminal's next_print_wraps flag is set.
type Cursor struct {
	Col     int
	Row     int
	Visible bool
}

// Equal compares the full cursor, including visibility.
func (c Cursor) Equal(o Cursor) bool {
	return c == o
}

// At reports whether the cursor sits at (col, row), ignoring visibility.
func (c Cursor) At(col, row int) bool {
	return c.Col == col && c.Row == row
}
