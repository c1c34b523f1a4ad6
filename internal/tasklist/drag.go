package tasklist

// Drag tracks one drag gesture over the active group. The zero value is idle.
type Drag struct {
	order    []int64
	id       int64
	dragging bool
}

// Start begins dragging id over a copy of order. Ids outside order are ignored.
func (d *Drag) Start(order []int64, id int64) bool {
	found := false
	for _, o := range order {
		if o == id {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	d.order = append([]int64(nil), order...)
	d.id = id
	d.dragging = true
	return true
}

// Active reports whether a gesture is in progress.
func (d *Drag) Active() bool { return d.dragging }

// ID is the id being dragged.
func (d *Drag) ID() int64 { return d.id }

// Over moves the dragged id in front of the sibling at index, counted among
// the rows that are not being dragged. An index past the last sibling moves
// it to the end.
func (d *Drag) Over(index int) {
	if !d.dragging {
		return
	}
	siblings := make([]int64, 0, len(d.order))
	for _, o := range d.order {
		if o != d.id {
			siblings = append(siblings, o)
		}
	}
	if index < 0 {
		index = 0
	}
	if index > len(siblings) {
		index = len(siblings)
	}
	out := make([]int64, 0, len(d.order))
	out = append(out, siblings[:index]...)
	out = append(out, d.id)
	d.order = append(out, siblings[index:]...)
}

// Position is the dragged id's current index in Order.
func (d *Drag) Position() int {
	for i, o := range d.order {
		if o == d.id {
			return i
		}
	}
	return -1
}

// Order returns the current visual order.
func (d *Drag) Order() []int64 {
	return append([]int64(nil), d.order...)
}

// Drop ends the gesture and returns the order to hand to Reorder.
func (d *Drag) Drop() []int64 {
	if !d.dragging {
		return nil
	}
	out := d.Order()
	d.Cancel()
	return out
}

// Cancel ends the gesture without a drop.
func (d *Drag) Cancel() {
	d.order = nil
	d.id = 0
	d.dragging = false
}
