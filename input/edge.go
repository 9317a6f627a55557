package input

// Snapshot is the per-frame input handed to every entity update
type Snapshot struct {
	Held        ButtonSet
	JustPressed ButtonSet
	// Camera is an external scalar carried alongside input; entities may read it
	Camera float32
}

// JustPressed returns buttons held now that were not held on the previous frame
func JustPressed(held, prev ButtonSet) ButtonSet {
	return held &^ prev
}

// EdgeDetector owns the single previous-held slot
// Zero value starts with nothing held
type EdgeDetector struct {
	prev ButtonSet
}

// Step computes this frame's snapshot and stores held for the next frame
// Must be called exactly once per frame, before entity updates
func (d *EdgeDetector) Step(held ButtonSet, camera float32) Snapshot {
	snap := Snapshot{
		Held:        held,
		JustPressed: JustPressed(held, d.prev),
		Camera:      camera,
	}
	d.prev = held
	return snap
}

// Previous returns the held set recorded on the last Step
func (d *EdgeDetector) Previous() ButtonSet {
	return d.prev
}

// Reset forgets the previous frame, next held buttons all register as presses
func (d *EdgeDetector) Reset() {
	d.prev = 0
}
