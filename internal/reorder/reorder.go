// Package reorder implements an interactive reorder engine: it lets a user
// pick up one element of a visually ordered list and drop it at a new
// position, with live re-ordering feedback while the drag is in flight and
// a commit callback once it settles.
//
// Two input modalities are supported, fixed per engine instance: fine
// (terminal mouse reporting, press/motion/release) and coarse (grab-and-move
// gestures synthesized from the keyboard, which have no hover equivalent and
// therefore poll the element under the interaction point on every move).
// Both feed the same three-phase lifecycle: begin, continuous reposition,
// end.
//
// The engine owns no application data. It tracks the visual order of a set
// of opaque elements and reports the result through OnReorder; persisting
// that order is the caller's job. Reordering across two independent
// containers is not supported.
package reorder

// Element is one rearrangeable member of the managed collection. Values
// must be comparable; callers typically use string IDs or pointers.
type Element any

// Point is a position in the container's coordinate space.
type Point struct {
	X, Y int
}

// Modality is the fixed input class an engine instance was created for.
type Modality int

const (
	// ModalityFine handles mouse-style input: a press on a handle starts
	// the drag, motion repositions, release ends it.
	ModalityFine Modality = iota
	// ModalityCoarse handles touch-style gestures with no hover
	// equivalent; the element under the interaction point is polled on
	// every move.
	ModalityCoarse
)

// State is the visual state of an element. The two states are mutually
// exclusive per element and reflect the true session state after any event
// returns.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// Phase identifies where in the drag lifecycle an input sample falls.
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseMove
	PhaseEnd
)

// PointerEvent is a normalized input sample. Both device classes are
// reduced to this shape before the engine sees them.
type PointerEvent struct {
	Phase Phase
	Pos   Point
}

// HandleFunc reports whether a point falls on an element's drag handle.
type HandleFunc func(Point) bool

// Container is the visual surface whose members the engine reorders.
// Exactly one container is bound per engine instance.
type Container interface {
	// Elements returns the members in their externally authoritative
	// order. Read at construction and on every Refresh.
	Elements() []Element
	// ElementAt returns the element occupying p, or nil.
	ElementAt(p Point) Element
}

// ScrollLock is the exclusive page-level resource held while a drag is in
// flight, so the gesture is not interpreted as scrolling. Acquire and
// Release calls are strictly balanced; Destroy releases an interrupted
// drag's hold.
type ScrollLock interface {
	Acquire()
	Release()
}

// nopLock is the default lock when the caller supplies none.
type nopLock struct{}

func (nopLock) Acquire() {}
func (nopLock) Release() {}

// Placement is one entry of an order snapshot: an element, its new
// zero-based visual index, and the caller-supplied stable index if the
// configuration provides one (defaulting to the new index).
type Placement struct {
	Element Element
	Index   int
	Stable  int
}

// Config holds the recognized construction options.
type Config struct {
	// Container is required; construction fails without it.
	Container Container
	// Filter restricts which elements count as items. Nil means all.
	Filter func(Element) bool
	// Handle resolves an element's drag handle. Nil means the whole
	// element is the handle. Returning a nil HandleFunc leaves that
	// element inert (it is silently skipped, never draggable).
	Handle func(Element) HandleFunc
	// StableIndex supplies an element's caller-managed index for
	// snapshots. Nil means snapshots default to the visual index.
	StableIndex func(Element) (int, bool)
	// OnReorder is invoked with the order snapshot after every completed
	// drag.
	OnReorder func([]Placement)
	// Modality fixes the input class for the engine's lifetime.
	Modality Modality
	// Lock guards page scrolling during a drag. Nil means no locking.
	Lock ScrollLock
}
