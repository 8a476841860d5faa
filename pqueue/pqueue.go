package pqueue

import (
	"cmp"
	"container/heap"
	"errors"
)

// ErrEmptyQueue is the panic value of Dequeue and Peek on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: dequeue from empty queue")

// PriorityQueue orders values by priority P; equal priorities are FIFO.
// Not safe for concurrent use.
type PriorityQueue[P cmp.Ordered, V any] struct {
	keys    keyHeap[P]
	buckets map[P]*bucket[V]
	size    int
}

// New returns an empty queue.
func New[P cmp.Ordered, V any]() *PriorityQueue[P, V] {
	return &PriorityQueue[P, V]{buckets: make(map[P]*bucket[V])}
}

// Enqueue appends v to the bucket for p.
func (q *PriorityQueue[P, V]) Enqueue(p P, v V) {
	b, ok := q.buckets[p]
	if !ok {
		b = &bucket[V]{}
		q.buckets[p] = b
		heap.Push(&q.keys, p)
	}
	b.push(v)
	q.size++
}

// Dequeue removes and returns the oldest value of the lowest priority.
// It panics with ErrEmptyQueue when the queue is empty.
func (q *PriorityQueue[P, V]) Dequeue() (V, P) {
	if len(q.keys) == 0 {
		panic(ErrEmptyQueue)
	}
	p := q.keys[0]
	b := q.buckets[p]
	v := b.pop()
	q.size--
	if b.empty() {
		heap.Pop(&q.keys)
		delete(q.buckets, p)
	}

	return v, p
}

// Peek returns the value Dequeue would return without removing it.
// It panics with ErrEmptyQueue when the queue is empty.
func (q *PriorityQueue[P, V]) Peek() (V, P) {
	if len(q.keys) == 0 {
		panic(ErrEmptyQueue)
	}
	p := q.keys[0]

	return q.buckets[p].front(), p
}

// IsEmpty reports whether no bucket remains.
func (q *PriorityQueue[P, V]) IsEmpty() bool { return len(q.keys) == 0 }

// Count returns the number of distinct priority buckets.
func (q *PriorityQueue[P, V]) Count() int { return len(q.keys) }

// Len returns the number of stored values across all buckets.
func (q *PriorityQueue[P, V]) Len() int { return q.size }

// bucket is a FIFO with an advancing head; the backing slice is recycled
// once drained.
type bucket[V any] struct {
	items []V
	head  int
}

func (b *bucket[V]) push(v V) { b.items = append(b.items, v) }

func (b *bucket[V]) pop() V {
	v := b.items[b.head]
	var zero V
	b.items[b.head] = zero
	b.head++

	return v
}

func (b *bucket[V]) front() V { return b.items[b.head] }

func (b *bucket[V]) empty() bool { return b.head == len(b.items) }

// keyHeap is a min-heap of bucket priorities.
type keyHeap[P cmp.Ordered] []P

func (h keyHeap[P]) Len() int           { return len(h) }
func (h keyHeap[P]) Less(i, j int) bool { return h[i] < h[j] }
func (h keyHeap[P]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *keyHeap[P]) Push(x any) { *h = append(*h, x.(P)) }

func (h *keyHeap[P]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
