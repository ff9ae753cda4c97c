package core

import "math/rand"

// RefillThreshold is the queue length below which a fresh group is appended.
const RefillThreshold = 2 * int(ShapeCount)

// GenerateFairGroup returns n shuffled permutations of the seven shapes,
// concatenated. Every aligned window of ShapeCount entries holds each shape once.
func GenerateFairGroup(rng *rand.Rand, n int) []Shape {
	if n <= 0 {
		return nil
	}
	out := make([]Shape, 0, n*int(ShapeCount))
	for range n {
		group := AllShapes()
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		out = append(out, group...)
	}
	return out
}

// Queue is the pending-shape sequence (bag randomizer).
// It never runs empty: PopFront refills before the look-ahead drops below RefillThreshold.
type Queue struct {
	rng     *rand.Rand
	pending []Shape
	head    int
}

// NewQueue creates a queue seeded with two fair groups.
func NewQueue(rng *rand.Rand) *Queue {
	return &Queue{
		rng:     rng,
		pending: GenerateFairGroup(rng, 2),
	}
}

// Len returns the number of pending shapes.
func (q *Queue) Len() int {
	return len(q.pending) - q.head
}

// Peek returns the next shape without consuming it.
func (q *Queue) Peek() Shape {
	return q.pending[q.head]
}

// Preview returns up to n upcoming shapes, front first.
func (q *Queue) Preview(n int) []Shape {
	if n > q.Len() {
		n = q.Len()
	}
	if n <= 0 {
		return nil
	}
	out := make([]Shape, n)
	copy(out, q.pending[q.head:q.head+n])
	return out
}

// PopFront removes and returns the next shape, refilling when needed.
func (q *Queue) PopFront() Shape {
	s := q.pending[q.head]
	q.head++

	if q.Len() < RefillThreshold {
		q.compact()
		q.pending = append(q.pending, GenerateFairGroup(q.rng, 1)...)
	}
	return s
}

// compact drops consumed entries so the backing slice does not grow without bound.
func (q *Queue) compact() {
	if q.head == 0 {
		return
	}
	n := copy(q.pending, q.pending[q.head:])
	q.pending = q.pending[:n]
	q.head = 0
}
