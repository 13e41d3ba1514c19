package snake

// Propagate makes every segment behind the head take the direction its
// predecessor held before this call. The walk starts at the tail so each
// segment reads a value that has not been updated yet; the head keeps its
// own direction. A turn therefore reaches segment i after i calls.
func (b *Body) Propagate() {
	if b.head < 0 {
		return
	}
	for i := b.tail(); i != b.head; i = b.segs[i].prev {
		b.segs[i].Dir = b.segs[b.segs[i].prev].Dir
	}
}

// Steer points the head in d unless d is the exact reverse of its current
// direction. It reports whether the direction was accepted.
func (b *Body) Steer(d Direction) bool {
	head := &b.segs[b.head]
	if d == head.Dir.Opposite() {
		return false
	}
	head.Dir = d
	return true
}
