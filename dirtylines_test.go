package govterm

import "testing"

func TestNewDirtyLinesAllDirty(t *testing.T) {
	d := newDirtyLines(3)
	if got := d.ToSlice(); len(got) != 3 {
		t.Errorf("expected all 3 rows dirty initially, got %v", got)
	}
}

func TestDirtyLinesClearResets(t *testing.T) {
	d := newDirtyLines(3)
	rows := d.Clear()
	if len(rows) != 3 {
		t.Errorf("Clear() returned %v, want 3 rows", rows)
	}
	if got := d.ToSlice(); len(got) != 0 {
		t.Errorf("expected clean after Clear(), got %v", got)
	}
}

func TestDirtyLinesAddExtend(t *testing.T) {
	d := newDirtyLines(5)
	d.Clear()
	d.Add(2)
	d.Extend(3, 5)
	got := d.ToSlice()
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("ToSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToSlice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDirtyLinesResizeGrowMarksNewDirty(t *testing.T) {
	d := newDirtyLines(2)
	d.Clear()
	d.Resize(4)
	got := d.ToSlice()
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("Resize growth = %v, want [2 3]", got)
	}
}

func TestDirtyLinesResizeShrink(t *testing.T) {
	d := newDirtyLines(4)
	d.Clear()
	d.Add(3)
	d.Resize(2)
	if got := d.ToSlice(); len(got) != 0 {
		t.Errorf("expected dropped rows to vanish, got %v", got)
	}
}
