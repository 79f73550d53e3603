package reorder_test

import (
	"testing"

	"github.com/startdeck/startdeck/internal/reorder"
)

// fakeContainer is a row list: element i occupies y=i, x in [0,width).
type fakeContainer struct {
	rows  []reorder.Element
	width int
}

func newFakeContainer(ids ...string) *fakeContainer {
	c := &fakeContainer{width: 10}
	for _, id := range ids {
		c.rows = append(c.rows, id)
	}
	return c
}

func (c *fakeContainer) Elements() []reorder.Element {
	rows := make([]reorder.Element, len(c.rows))
	copy(rows, c.rows)
	return rows
}

func (c *fakeContainer) ElementAt(p reorder.Point) reorder.Element {
	if p.Y < 0 || p.Y >= len(c.rows) || p.X < 0 || p.X >= c.width {
		return nil
	}
	return c.rows[p.Y]
}

// syncTo re-renders the container from the engine's live order, the way the
// UI does after every handled event.
func (c *fakeContainer) syncTo(e *reorder.Engine) {
	c.rows = e.Order()
}

// rowOf returns the current y of an element, or -1.
func (c *fakeContainer) rowOf(el reorder.Element) int {
	for i, row := range c.rows {
		if row == el {
			return i
		}
	}
	return -1
}

// countingLock records acquire/release balance.
type countingLock struct {
	acquires int
	releases int
}

func (l *countingLock) Acquire() { l.acquires++ }
func (l *countingLock) Release() { l.releases++ }

func at(x, y int) reorder.Point { return reorder.Point{X: x, Y: y} }

func press(y int) reorder.PointerEvent {
	return reorder.PointerEvent{Phase: reorder.PhaseBegin, Pos: at(0, y)}
}

func move(y int) reorder.PointerEvent {
	return reorder.PointerEvent{Phase: reorder.PhaseMove, Pos: at(0, y)}
}

func release() reorder.PointerEvent {
	return reorder.PointerEvent{Phase: reorder.PhaseEnd}
}

func ids(placements []reorder.Placement) []string {
	out := make([]string, len(placements))
	for i, p := range placements {
		out[i] = p.Element.(string)
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestNew_RequiresContainer(t *testing.T) {
	_, err := reorder.New(reorder.Config{})
	if err == nil {
		t.Fatal("expected construction error without container")
	}
}

func TestEngine_DragBeforeTarget(t *testing.T) {
	// The worked example: [A B C D], drag A over C. A precedes C, so A is
	// reinserted immediately before C.
	c := newFakeContainer("A", "B", "C", "D")
	var snapshot []reorder.Placement
	e, err := reorder.New(reorder.Config{
		Container: c,
		OnReorder: func(p []reorder.Placement) { snapshot = p },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !e.Pointer(press(0)) {
		t.Fatal("press on A should start a session")
	}
	e.Pointer(move(c.rowOf("C")))
	c.syncTo(e)
	e.Pointer(release())

	if snapshot == nil {
		t.Fatal("expected OnReorder to fire")
	}
	if !equalIDs(ids(snapshot), []string{"B", "A", "C", "D"}) {
		t.Errorf("snapshot order = %v, want [B A C D]", ids(snapshot))
	}
	for i, p := range snapshot {
		if p.Index != i {
			t.Errorf("placement %d has index %d", i, p.Index)
		}
		if p.Stable != i {
			t.Errorf("placement %d has stable index %d, want default %d", i, p.Stable, i)
		}
	}
}

func TestEngine_DragAfterTarget(t *testing.T) {
	// D follows B, so hovering B reinserts D immediately after it.
	c := newFakeContainer("A", "B", "C", "D")
	e, _ := reorder.New(reorder.Config{Container: c})

	e.Pointer(press(3))
	e.Pointer(move(1))
	c.syncTo(e)
	e.Pointer(release())

	if !equalIDs(ids(e.Snapshot()), []string{"A", "B", "D", "C"}) {
		t.Errorf("order = %v, want [A B D C]", ids(e.Snapshot()))
	}
}

func TestEngine_OrderPreservation(t *testing.T) {
	// A multi-step drag keeps exactly the original elements, each once,
	// with the relative order of the undragged elements intact.
	c := newFakeContainer("A", "B", "C", "D", "E")
	e, _ := reorder.New(reorder.Config{Container: c})

	e.Pointer(press(0))
	for _, target := range []string{"B", "C", "D", "E"} {
		e.Pointer(move(c.rowOf(target)))
		c.syncTo(e)
	}
	e.Pointer(release())

	got := ids(e.Snapshot())
	if !equalIDs(got, []string{"B", "C", "D", "A", "E"}) {
		t.Errorf("order = %v, want [B C D A E]", got)
	}
	seen := make(map[string]int)
	for _, id := range got {
		seen[id]++
	}
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		if seen[id] != 1 {
			t.Errorf("element %s appears %d times", id, seen[id])
		}
	}
}

func TestEngine_RepositionIdempotentWhenAdjacent(t *testing.T) {
	c := newFakeContainer("A", "B", "C")
	e, _ := reorder.New(reorder.Config{Container: c})

	// B immediately precedes C: hovering C is a no-op.
	e.Pointer(press(1))
	e.Pointer(move(2))
	c.syncTo(e)
	if !equalIDs(ids(e.Snapshot()), []string{"A", "B", "C"}) {
		t.Errorf("order changed on no-op reposition: %v", ids(e.Snapshot()))
	}

	// B immediately follows A: hovering A is a no-op too.
	e.Pointer(move(0))
	c.syncTo(e)
	if !equalIDs(ids(e.Snapshot()), []string{"A", "B", "C"}) {
		t.Errorf("order changed on no-op reposition: %v", ids(e.Snapshot()))
	}
	e.Pointer(release())
}

func TestEngine_SingleActiveSession(t *testing.T) {
	c := newFakeContainer("A", "B", "C")
	fires := 0
	e, _ := reorder.New(reorder.Config{
		Container: c,
		OnReorder: func([]reorder.Placement) { fires++ },
	})

	if !e.Pointer(press(0)) {
		t.Fatal("first press should start a session")
	}
	if e.Pointer(press(2)) {
		t.Error("second press must not start another session")
	}

	dragging := 0
	for _, el := range []string{"A", "B", "C"} {
		if state, ok := e.State(el); ok && state == reorder.StateDragging {
			dragging++
		}
	}
	if dragging != 1 {
		t.Errorf("%d elements marked dragging, want 1", dragging)
	}

	e.Pointer(release())
	if fires != 1 {
		t.Errorf("OnReorder fired %d times, want 1", fires)
	}
}

func TestEngine_OrphanEndIsNoOp(t *testing.T) {
	c := newFakeContainer("A", "B")
	fires := 0
	e, _ := reorder.New(reorder.Config{
		Container: c,
		OnReorder: func([]reorder.Placement) { fires++ },
	})

	if e.Pointer(release()) {
		t.Error("end without a session should report unhandled")
	}
	if fires != 0 {
		t.Errorf("OnReorder fired %d times on orphan end", fires)
	}
}

func TestEngine_ScrollLockBalance(t *testing.T) {
	c := newFakeContainer("A", "B")
	lock := &countingLock{}
	e, _ := reorder.New(reorder.Config{Container: c, Lock: lock})

	e.Pointer(press(0))
	e.Pointer(move(1))
	e.Pointer(release())
	if lock.acquires != 1 || lock.releases != 1 {
		t.Errorf("after full drag: acquires=%d releases=%d, want 1/1", lock.acquires, lock.releases)
	}

	// Destroy mid-drag must still release the lock, exactly once.
	e.Pointer(press(0))
	e.Destroy()
	e.Destroy()
	if lock.acquires != 2 || lock.releases != 2 {
		t.Errorf("after destroy mid-drag: acquires=%d releases=%d, want 2/2", lock.acquires, lock.releases)
	}
}

func TestEngine_DestroyTeardown(t *testing.T) {
	c := newFakeContainer("A", "B", "C")
	e, _ := reorder.New(reorder.Config{Container: c})

	e.Destroy()

	if e.Active() {
		t.Error("container should no longer be an active reorder zone")
	}
	if e.Pointer(press(0)) {
		t.Error("events after destroy must be ignored")
	}
	for _, el := range []string{"A", "B", "C"} {
		if _, ok := e.State(el); ok {
			t.Errorf("element %v retains a marker after destroy", el)
		}
	}
	if len(e.Snapshot()) != 0 {
		t.Errorf("snapshot after destroy has %d entries", len(e.Snapshot()))
	}
	// Refresh after destroy stays inert.
	e.Refresh()
	if len(e.Order()) != 0 {
		t.Error("refresh after destroy should not rediscover elements")
	}
}

func TestEngine_EmptyContainer(t *testing.T) {
	c := newFakeContainer()
	e, err := reorder.New(reorder.Config{Container: c})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Refresh()
	if got := e.Snapshot(); len(got) != 0 {
		t.Errorf("snapshot of empty container has %d entries", len(got))
	}
	e.Destroy()
}

func TestEngine_HandleMissDoesNotBegin(t *testing.T) {
	c := newFakeContainer("A", "B")
	e, _ := reorder.New(reorder.Config{
		Container: c,
		// Grip occupies the two leftmost cells of every row.
		Handle: func(reorder.Element) reorder.HandleFunc {
			return func(p reorder.Point) bool { return p.X < 2 }
		},
	})

	if e.Pointer(reorder.PointerEvent{Phase: reorder.PhaseBegin, Pos: at(5, 0)}) {
		t.Error("press outside the handle must not start a session")
	}
	if !e.Pointer(reorder.PointerEvent{Phase: reorder.PhaseBegin, Pos: at(1, 0)}) {
		t.Error("press on the handle should start a session")
	}
	e.Pointer(release())
}

func TestEngine_ElementWithoutHandleIsInert(t *testing.T) {
	c := newFakeContainer("A", "B")
	e, _ := reorder.New(reorder.Config{
		Container: c,
		Handle: func(el reorder.Element) reorder.HandleFunc {
			if el == "B" {
				return nil // no resolvable handle
			}
			return func(reorder.Point) bool { return true }
		},
	})

	if e.Pointer(press(1)) {
		t.Error("element without a handle must stay inert")
	}
	if !e.Pointer(press(0)) {
		t.Error("element with a handle should be draggable")
	}
	e.Pointer(release())
}

func TestEngine_ModalityGate(t *testing.T) {
	c := newFakeContainer("A", "B")

	fine, _ := reorder.New(reorder.Config{Container: c, Modality: reorder.ModalityFine})
	if fine.Touch(press(0)) {
		t.Error("fine engine must ignore coarse events")
	}

	coarse, _ := reorder.New(reorder.Config{Container: c, Modality: reorder.ModalityCoarse})
	if coarse.Pointer(press(0)) {
		t.Error("coarse engine must ignore fine events")
	}
}

func TestEngine_CoarseDrag(t *testing.T) {
	c := newFakeContainer("A", "B", "C")
	var snapshot []reorder.Placement
	e, _ := reorder.New(reorder.Config{
		Container: c,
		Modality:  reorder.ModalityCoarse,
		OnReorder: func(p []reorder.Placement) { snapshot = p },
	})

	if !e.Touch(press(2)) {
		t.Fatal("touch begin should start a session")
	}
	e.Touch(move(0))
	c.syncTo(e)
	e.Touch(release())

	// C followed A, so it lands immediately after it.
	if !equalIDs(ids(snapshot), []string{"A", "C", "B"}) {
		t.Errorf("order = %v, want [A C B]", ids(snapshot))
	}
}

func TestEngine_RefreshMidDragAbandonsSession(t *testing.T) {
	c := newFakeContainer("A", "B", "C")
	lock := &countingLock{}
	fires := 0
	e, _ := reorder.New(reorder.Config{
		Container: c,
		Lock:      lock,
		OnReorder: func([]reorder.Placement) { fires++ },
	})

	e.Pointer(press(0))
	// The caller removes the dragged element externally, then refreshes.
	c.rows = []reorder.Element{"B", "C"}
	e.Refresh()

	if _, ok := e.Dragging(); ok {
		t.Error("session should be abandoned when the dragged element vanishes")
	}
	if lock.releases != 1 {
		t.Errorf("lock releases = %d, want 1", lock.releases)
	}
	// The end event that eventually arrives is an orphan and must no-op.
	if e.Pointer(release()) {
		t.Error("orphan end after refresh should be a no-op")
	}
	if fires != 0 {
		t.Errorf("OnReorder fired %d times, want 0", fires)
	}
}

func TestEngine_RefreshKeepsIdentity(t *testing.T) {
	c := newFakeContainer("A", "B")
	e, _ := reorder.New(reorder.Config{Container: c})

	idA, ok := e.Identity("A")
	if !ok || idA == "" {
		t.Fatal("expected an identity for A after discovery")
	}
	e.Refresh()
	if again, _ := e.Identity("A"); again != idA {
		t.Errorf("identity changed across refresh: %s != %s", again, idA)
	}

	// New elements get identities, vanished ones lose theirs.
	c.rows = []reorder.Element{"B", "C"}
	e.Refresh()
	if _, ok := e.Identity("A"); ok {
		t.Error("A should no longer be managed")
	}
	if _, ok := e.Identity("C"); !ok {
		t.Error("C should be discovered by refresh")
	}
}

func TestEngine_StableIndexInSnapshot(t *testing.T) {
	c := newFakeContainer("A", "B", "C")
	stable := map[string]int{"A": 10, "C": 30}
	e, _ := reorder.New(reorder.Config{
		Container: c,
		StableIndex: func(el reorder.Element) (int, bool) {
			s, ok := stable[el.(string)]
			return s, ok
		},
	})

	snapshot := e.Snapshot()
	want := []int{10, 1, 30} // B has no stable index, defaults to its new index
	for i, p := range snapshot {
		if p.Stable != want[i] {
			t.Errorf("placement %d stable = %d, want %d", i, p.Stable, want[i])
		}
	}
}

func TestEngine_FilteredTargetIgnored(t *testing.T) {
	c := newFakeContainer("A", "B", "X", "C")
	e, _ := reorder.New(reorder.Config{
		Container: c,
		Filter:    func(el reorder.Element) bool { return el != "X" },
	})

	e.Pointer(press(0))
	// Hovering the filtered-out element must not reposition anything.
	e.Pointer(move(2))
	c.syncTo(e)
	e.Pointer(release())

	if !equalIDs(ids(e.Snapshot()), []string{"A", "B", "C"}) {
		t.Errorf("order = %v, want [A B C]", ids(e.Snapshot()))
	}
}
