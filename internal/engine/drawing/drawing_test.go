package drawing

import (
	"fmt"
	"testing"

	"github.com/dshills/polydraw/internal/geom"
)

// newTestState returns a state with deterministic polygon IDs.
func newTestState() *State {
	s := NewState(100)
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("poly-%d", n)
	}
	return s
}

func TestAddPointStartsPolygon(t *testing.T) {
	s := newTestState()

	s.AddPoint(geom.Pt(1, 2))

	cur := s.Current()
	if len(cur) != 1 || cur[0] != geom.Pt(1, 2) {
		t.Errorf("Current = %v, want [(1, 2)]", cur)
	}
	if len(s.Finished()) != 0 {
		t.Error("AddPoint must not touch finished polygons")
	}
}

func TestAddPointInsertionOrder(t *testing.T) {
	s := newTestState()
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1)}

	for _, p := range pts {
		s.AddPoint(p)
	}

	cur := s.Current()
	if len(cur) != len(pts) {
		t.Fatalf("Current has %d points, want %d", len(cur), len(pts))
	}
	for i, p := range pts {
		if cur[i] != p {
			t.Errorf("Current[%d] = %v, want %v", i, cur[i], p)
		}
	}
}

func TestFinishPolygon(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))
	s.AddPoint(geom.Pt(1, 0))

	poly, ok := s.FinishPolygon()
	if !ok {
		t.Fatal("FinishPolygon should succeed with points present")
	}
	if poly.ID == "" {
		t.Error("finished polygon must have an ID")
	}
	if !poly.Points.Equal(geom.PolyLine{geom.Pt(0, 0), geom.Pt(1, 0)}) {
		t.Errorf("finished points = %v", poly.Points)
	}

	if s.Current() != nil {
		t.Error("Current should be absent after finish")
	}
	fin := s.Finished()
	if len(fin) != 1 || !fin[0].Points.Equal(poly.Points) {
		t.Errorf("Finished = %v", fin)
	}
}

func TestFinishPolygonNoOp(t *testing.T) {
	s := newTestState()

	if _, ok := s.FinishPolygon(); ok {
		t.Error("FinishPolygon with nothing in progress should report false")
	}
	if s.UndoCount() != 0 {
		t.Error("no-op finish must not record an undo entry")
	}
}

func TestFinishInsertsAtFront(t *testing.T) {
	s := newTestState()

	s.AddPoint(geom.Pt(1, 1))
	first, _ := s.FinishPolygon()
	s.AddPoint(geom.Pt(2, 2))
	second, _ := s.FinishPolygon()

	fin := s.Finished()
	if len(fin) != 2 {
		t.Fatalf("Finished has %d polygons, want 2", len(fin))
	}
	if fin[0].ID != second.ID || fin[1].ID != first.ID {
		t.Error("finished polygons should be ordered newest-first")
	}
}

func TestClear(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))
	s.FinishPolygon()
	s.AddPoint(geom.Pt(1, 1))

	if !s.Clear() {
		t.Fatal("Clear with content should report true")
	}
	if !s.IsEmpty() {
		t.Error("state should be empty after Clear")
	}

	// Clear is undoable.
	s.Undo()
	if len(s.Finished()) != 1 || s.Current().Len() != 1 {
		t.Error("undo after Clear should restore polygons")
	}
}

func TestClearNoOp(t *testing.T) {
	s := newTestState()

	if s.Clear() {
		t.Error("Clear on empty state should report false")
	}
	if s.UndoCount() != 0 {
		t.Error("no-op clear must not record an undo entry")
	}
}

func TestUndoEmptyHistoryClearsCursor(t *testing.T) {
	s := newTestState()
	s.SetCursor(geom.Pt(5, 5))

	if s.Undo() {
		t.Error("Undo with empty history should report false")
	}
	if _, set := s.Cursor(); set {
		t.Error("Undo must clear the cursor even with empty history")
	}
}

func TestRedoEmptyHistoryClearsCursor(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))
	s.SetCursor(geom.Pt(5, 5))

	if s.Redo() {
		t.Error("Redo with empty redo stack should report false")
	}
	if _, set := s.Cursor(); set {
		t.Error("Redo must clear the cursor even with empty redo stack")
	}
	if s.Current().Len() != 1 {
		t.Error("failed redo must leave polygons untouched")
	}
}

func TestUndoRedoScenario(t *testing.T) {
	s := newTestState()

	s.AddPoint(geom.Pt(0, 0))
	s.AddPoint(geom.Pt(1, 0))
	s.FinishPolygon()

	fin := s.Finished()
	if len(fin) != 1 || !fin[0].Points.Equal(geom.PolyLine{geom.Pt(0, 0), geom.Pt(1, 0)}) {
		t.Fatalf("after finish: Finished = %v", fin)
	}
	if s.Current() != nil {
		t.Fatal("after finish: Current should be absent")
	}

	s.Undo()
	if len(s.Finished()) != 0 {
		t.Error("after undo: Finished should be empty")
	}
	if !s.Current().Equal(geom.PolyLine{geom.Pt(0, 0), geom.Pt(1, 0)}) {
		t.Errorf("after undo: Current = %v", s.Current())
	}

	s.Undo()
	if !s.Current().Equal(geom.PolyLine{geom.Pt(0, 0)}) {
		t.Errorf("after second undo: Current = %v", s.Current())
	}

	s.Redo()
	s.Redo()
	fin = s.Finished()
	if len(fin) != 1 || !fin[0].Points.Equal(geom.PolyLine{geom.Pt(0, 0), geom.Pt(1, 0)}) {
		t.Errorf("after redo twice: Finished = %v", fin)
	}
	if s.Current() != nil {
		t.Error("after redo twice: Current should be absent")
	}
}

func TestEditClearsRedo(t *testing.T) {
	s := newTestState()

	s.AddPoint(geom.Pt(1, 1)) // a
	s.Undo()
	s.AddPoint(geom.Pt(2, 2)) // b

	if s.CanRedo() {
		t.Error("edit after undo must discard the redo stack")
	}
	if s.Redo() {
		t.Error("Redo after a discarding edit should be a no-op")
	}
	if !s.Current().Equal(geom.PolyLine{geom.Pt(2, 2)}) {
		t.Errorf("Current = %v, want only b", s.Current())
	}
}

func TestUndoRedoAreInverses(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))
	s.AddPoint(geom.Pt(3, 0))
	s.FinishPolygon()
	s.AddPoint(geom.Pt(7, 7))

	before := s.snapshot()

	s.AddPoint(geom.Pt(8, 8))
	after := s.snapshot()

	s.Undo()
	if !s.snapshot().Equal(before) {
		t.Error("undo should restore the pre-edit state")
	}

	s.Redo()
	if !s.snapshot().Equal(after) {
		t.Error("redo should restore the post-edit state")
	}
}

func TestPolygonIDSurvivesUndoRedo(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))
	poly, _ := s.FinishPolygon()

	s.Undo()
	s.Redo()

	fin := s.Finished()
	if len(fin) != 1 || fin[0].ID != poly.ID {
		t.Errorf("polygon ID after undo/redo = %q, want %q", fin[0].ID, poly.ID)
	}
}

func TestSetCursorNeverTouchesHistory(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))

	undoBefore, redoBefore := s.UndoCount(), s.RedoCount()

	for i := 0; i < 50; i++ {
		s.SetCursor(geom.Pt(float64(i), float64(i)))
	}
	s.ClearCursor()
	s.SetCursor(geom.Pt(1, 1))

	if s.UndoCount() != undoBefore || s.RedoCount() != redoBefore {
		t.Error("cursor movement must not change history stacks")
	}

	p, set := s.Cursor()
	if !set || p != geom.Pt(1, 1) {
		t.Errorf("Cursor = %v, %v, want (1, 1), true", p, set)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))
	s.FinishPolygon()
	s.AddPoint(geom.Pt(5, 5))

	s.Finished()[0].Points[0] = geom.Pt(99, 99)
	s.Current()[0] = geom.Pt(99, 99)

	if s.Finished()[0].Points[0] != geom.Pt(0, 0) {
		t.Error("mutating Finished() result leaked into state")
	}
	if s.Current()[0] != geom.Pt(5, 5) {
		t.Error("mutating Current() result leaked into state")
	}
}

func TestHistoryIsIsolatedFromLiveState(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))
	s.AddPoint(geom.Pt(1, 1))

	// Mutate live state after snapshots were taken, then unwind.
	s.AddPoint(geom.Pt(2, 2))
	s.Undo()

	if !s.Current().Equal(geom.PolyLine{geom.Pt(0, 0), geom.Pt(1, 1)}) {
		t.Errorf("restored state = %v, shows aliasing with live edits", s.Current())
	}

	// Undo again after the restore mutated nothing in stored history.
	s.Undo()
	if !s.Current().Equal(geom.PolyLine{geom.Pt(0, 0)}) {
		t.Errorf("second restore = %v", s.Current())
	}
}

func TestReplaceResetsHistory(t *testing.T) {
	s := newTestState()
	s.AddPoint(geom.Pt(0, 0))
	s.SetCursor(geom.Pt(1, 1))

	loaded := []Polygon{{ID: "loaded", Points: geom.PolyLine{geom.Pt(4, 4)}}}
	s.Replace(loaded, nil)

	if s.CanUndo() || s.CanRedo() {
		t.Error("Replace should reset history")
	}
	if _, set := s.Cursor(); set {
		t.Error("Replace should clear the cursor")
	}
	fin := s.Finished()
	if len(fin) != 1 || fin[0].ID != "loaded" {
		t.Errorf("Finished = %v", fin)
	}

	// Replace must deep-copy its inputs.
	loaded[0].Points[0] = geom.Pt(99, 99)
	if s.Finished()[0].Points[0] != geom.Pt(4, 4) {
		t.Error("Replace aliased caller-owned memory")
	}
}

func TestUndoBoundTrimsOldest(t *testing.T) {
	s := NewState(2)
	s.newID = func() string { return "id" }

	s.AddPoint(geom.Pt(1, 1))
	s.AddPoint(geom.Pt(2, 2))
	s.AddPoint(geom.Pt(3, 3))

	if s.UndoCount() != 2 {
		t.Fatalf("UndoCount = %d, want 2", s.UndoCount())
	}

	s.Undo()
	s.Undo()
	if s.Undo() {
		t.Error("third undo should fail, oldest entry was trimmed")
	}
	if !s.Current().Equal(geom.PolyLine{geom.Pt(1, 1)}) {
		t.Errorf("deepest reachable state = %v, want [(1, 1)]", s.Current())
	}
}
