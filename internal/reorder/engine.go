package reorder

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoContainer is returned by New when the configuration has no container.
var ErrNoContainer = errors.New("reorder: no container")

// affordance is the per-element drag installation: a stable identity
// assigned at discovery, the resolved handle, and the visual state marker.
type affordance struct {
	id        string
	handle    HandleFunc
	draggable bool
	state     State
}

// session is the transient state between a begin and an end event.
type session struct {
	element Element
	began   time.Time
}

// Engine binds one container for its lifetime and manages drag sessions on
// its elements. All methods must be called from a single goroutine; the
// engine is event-driven and every handler runs to completion before the
// next event is processed.
type Engine struct {
	cfg      Config
	modality Modality
	lock     ScrollLock

	order       []Element
	affordances map[Element]*affordance
	session     *session
	locked      bool
	active      bool
	destroyed   bool
}

// New constructs an engine bound to the configured container, marks the
// container as an active reorder zone and performs initial element
// discovery. A missing container is a configuration error: the engine is
// not constructed, and the caller is expected to carry on without it.
func New(cfg Config) (*Engine, error) {
	if cfg.Container == nil {
		return nil, ErrNoContainer
	}
	lock := cfg.Lock
	if lock == nil {
		lock = nopLock{}
	}
	e := &Engine{
		cfg:         cfg,
		modality:    cfg.Modality,
		lock:        lock,
		affordances: make(map[Element]*affordance),
		active:      true,
	}
	e.Refresh()
	return e, nil
}

// Refresh re-discovers the container's elements and installs affordances
// for any not yet recognized. Idempotent; callable any number of times,
// typically after the caller mutates the list externally. If the element
// being dragged vanishes in a refresh, the session is abandoned and the
// scroll lock released.
func (e *Engine) Refresh() {
	if e.destroyed {
		return
	}

	elements := e.cfg.Container.Elements()
	order := make([]Element, 0, len(elements))
	present := make(map[Element]bool, len(elements))
	for _, el := range elements {
		if e.cfg.Filter != nil && !e.cfg.Filter(el) {
			continue
		}
		order = append(order, el)
		present[el] = true
		if _, ok := e.affordances[el]; ok {
			continue
		}
		aff := &affordance{id: uuid.New().String(), state: StateIdle, draggable: true}
		if e.cfg.Handle != nil {
			aff.handle = e.cfg.Handle(el)
			// No resolvable handle: the element stays inert.
			aff.draggable = aff.handle != nil
		}
		e.affordances[el] = aff
	}

	for el := range e.affordances {
		if !present[el] {
			delete(e.affordances, el)
		}
	}
	e.order = order

	if e.session != nil && !present[e.session.element] {
		e.session = nil
		e.releaseLock()
	}
}

// Pointer feeds a fine-modality input sample. Events are ignored on a
// coarse-modality engine. Returns true if the sample opened, moved or
// closed a drag session.
func (e *Engine) Pointer(ev PointerEvent) bool {
	if e.destroyed || e.modality != ModalityFine {
		return false
	}
	return e.phase(ev)
}

// Touch feeds a coarse-modality input sample. Events are ignored on a
// fine-modality engine. There is no hover equivalent in this modality, so
// every move polls the element under the interaction point directly.
func (e *Engine) Touch(ev PointerEvent) bool {
	if e.destroyed || e.modality != ModalityCoarse {
		return false
	}
	return e.phase(ev)
}

// phase is the shared lifecycle transition both modalities converge on.
func (e *Engine) phase(ev PointerEvent) bool {
	switch ev.Phase {
	case PhaseBegin:
		return e.begin(ev.Pos)
	case PhaseMove:
		return e.move(ev.Pos)
	case PhaseEnd:
		return e.end()
	}
	return false
}

// begin opens a drag session for the element under p, provided it is
// draggable and p falls on its handle. A begin while a session is already
// open is ignored.
func (e *Engine) begin(p Point) bool {
	if e.session != nil {
		return false
	}
	el := e.cfg.Container.ElementAt(p)
	if el == nil {
		return false
	}
	aff, ok := e.affordances[el]
	if !ok || !aff.draggable {
		return false
	}
	if aff.handle != nil && !aff.handle(p) {
		return false
	}

	aff.state = StateDragging
	e.session = &session{element: el, began: time.Now()}
	e.acquireLock()
	return true
}

// move repositions the dragged element relative to the element under p.
func (e *Engine) move(p Point) bool {
	if e.session == nil {
		return false
	}
	e.reposition(e.cfg.Container.ElementAt(p))
	return true
}

// reposition applies the sibling-precedence rule: if the dragged element
// currently precedes the target it is reinserted immediately before it,
// otherwise immediately after. Re-executed on every qualifying event; a
// no-op when the dragged element is already adjacent in the required
// direction. Targets outside the managed collection are ignored.
func (e *Engine) reposition(target Element) {
	s := e.session
	if s == nil || target == nil || target == s.element {
		return
	}
	if _, ok := e.affordances[target]; !ok {
		return
	}
	di := indexOf(e.order, s.element)
	ti := indexOf(e.order, target)
	if di < 0 || ti < 0 {
		return
	}

	rest := make([]Element, 0, len(e.order))
	for _, el := range e.order {
		if el != s.element {
			rest = append(rest, el)
		}
	}
	at := indexOf(rest, target)
	if di > ti {
		at++ // dragged followed the target: reinsert after it
	}
	order := make([]Element, 0, len(e.order))
	order = append(order, rest[:at]...)
	order = append(order, s.element)
	order = append(order, rest[at:]...)
	e.order = order
}

// end closes the session: the dragged element returns to idle, the scroll
// lock is released and the reorder callback fires with the order snapshot.
// An end with no open session is a no-op, not a failure.
func (e *Engine) end() bool {
	s := e.session
	if s == nil {
		return false
	}
	if aff, ok := e.affordances[s.element]; ok {
		aff.state = StateIdle
	}
	e.session = nil
	e.releaseLock()
	if e.cfg.OnReorder != nil {
		e.cfg.OnReorder(e.Snapshot())
	}
	return true
}

// Snapshot returns the current visual order without side effects: one
// placement per element, in order, carrying the caller's stable index when
// available.
func (e *Engine) Snapshot() []Placement {
	placements := make([]Placement, len(e.order))
	for i, el := range e.order {
		stable := i
		if e.cfg.StableIndex != nil {
			if s, ok := e.cfg.StableIndex(el); ok {
				stable = s
			}
		}
		placements[i] = Placement{Element: el, Index: i, Stable: stable}
	}
	return placements
}

// Order returns a copy of the current visual order. While a session is
// open this is the live, continuously repositioned order the caller should
// render.
func (e *Engine) Order() []Element {
	order := make([]Element, len(e.order))
	copy(order, e.order)
	return order
}

// State reports an element's visual state marker. ok is false for elements
// the engine does not manage (including everything after Destroy).
func (e *Engine) State(el Element) (State, bool) {
	aff, ok := e.affordances[el]
	if !ok {
		return StateIdle, false
	}
	return aff.state, true
}

// Identity returns the opaque identifier assigned to an element at
// discovery time. It is stable across Refresh calls for as long as the
// element remains in the container.
func (e *Engine) Identity(el Element) (string, bool) {
	aff, ok := e.affordances[el]
	if !ok {
		return "", false
	}
	return aff.id, true
}

// Dragging returns the element of the open session, if any.
func (e *Engine) Dragging() (Element, bool) {
	if e.session == nil {
		return nil, false
	}
	return e.session.element, true
}

// Active reports whether the container is marked as a reorder zone.
func (e *Engine) Active() bool {
	return e.active
}

// Modality returns the input class the engine was constructed for.
func (e *Engine) Modality() Modality {
	return e.modality
}

// Destroy tears the engine down: the scroll lock is released even if a
// drag was interrupted, all markers and affordances are removed, and every
// subsequent event is ignored. Safe to call with no drag in progress.
func (e *Engine) Destroy() {
	e.releaseLock()
	e.session = nil
	e.affordances = make(map[Element]*affordance)
	e.order = nil
	e.active = false
	e.destroyed = true
}

// acquireLock takes the scroll lock exactly once per session.
func (e *Engine) acquireLock() {
	if !e.locked {
		e.lock.Acquire()
		e.locked = true
	}
}

// releaseLock returns the scroll lock if held.
func (e *Engine) releaseLock() {
	if e.locked {
		e.lock.Release()
		e.locked = false
	}
}

// indexOf is a linear scan; managed lists are small, human-curated.
func indexOf(order []Element, el Element) int {
	for i, o := range order {
		if o == el {
			return i
		}
	}
	return -1
}
