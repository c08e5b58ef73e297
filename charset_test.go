package govterm

import "testing"

func TestCharsetASCIITranslateIdentity(t *testing.T) {
	if got := CharsetASCII.Translate('q'); got != 'q' {
		t.Errorf("ASCII Translate('q') = %q, want 'q'", got)
	}
}

func TestCharsetDrawingTranslate(t *testing.T) {
	if got := CharsetDrawing.Translate('q'); got != '─' {
		t.Errorf("Drawing Translate('q') = %q, want '─'", got)
	}
}

func TestCharsetDrawingOutsideRangeIsIdentity(t *testing.T) {
	if got := CharsetDrawing.Translate('A'); got != 'A' {
		t.Errorf("Drawing Translate('A') = %q, want 'A'", got)
	}
}
