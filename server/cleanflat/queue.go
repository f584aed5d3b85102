package cleanflat

import "github.com/dm-vev/cleanflat/server/world"

// queue is a FIFO queue of chunk positions. Positions are not deduplicated.
type queue struct {
	items []world.ChunkPos
	head  int
}

func (q *queue) push(pos world.ChunkPos) {
	q.items = append(q.items, pos)
}

func (q *queue) pop() (world.ChunkPos, bool) {
	if q.head == len(q.items) {
		return world.ChunkPos{}, false
	}
	pos := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	} else if q.head >= 64 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items, q.head = q.items[:n], 0
	}
	return pos, true
}

func (q *queue) len() int {
	return len(q.items) - q.head
}

func (q *queue) snapshot() []world.ChunkPos {
	return append([]world.ChunkPos(nil), q.items[q.head:]...)
}

func (q *queue) clear() {
	q.items, q.head = nil, 0
}
