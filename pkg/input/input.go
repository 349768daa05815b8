package input

// Sample is one tick's reading from the touch collaborator.
type Sample struct {
	Touching bool
	X, Y     float64 // field pixels, y grows downward
}

// Tracker turns a stream of samples into new-press edges, so a held touch
// only counts once.
type Tracker struct {
	last bool
}

// Pressed reports whether s starts a new touch.
func (t *Tracker) Pressed(s Sample) bool {
	edge := s.Touching && !t.last
	t.last = s.Touching
	return edge
}

// Hold marks the touch as already down, so a touch carried over from a
// previous screen is not seen as a new press.
func (t *Tracker) Hold() {
	t.last = true
}

// Gate holds play after a run ends until the touch is released and pressed again.
type Gate struct {
	armed    bool
	released bool
}

// Arm closes the gate.
func (g *Gate) Arm() {
	g.armed = true
	g.released = false
}

// Armed reports whether the gate is still closed.
func (g *Gate) Armed() bool {
	return g.armed
}

// Open forces the gate open without waiting for a touch.
func (g *Gate) Open() {
	g.armed = false
}

// Feed consumes a sample and reports whether the gate opened on it.
func (g *Gate) Feed(s Sample) bool {
	if !g.armed {
		return false
	}
	if !s.Touching {
		g.released = true
		return false
	}
	if g.released {
		g.armed = false
		return true
	}
	return false
}
