// Package pqueue implements a priority-ordered multimap: values are grouped
// into FIFO buckets keyed by priority, and buckets are served in ascending
// priority order.
//
// What:
//
//   - Enqueue(p, v) appends v to the bucket for p, creating the bucket when absent.
//   - Dequeue() pops the front of the lowest-priority bucket and drops the
//     bucket once it empties.
//   - Count() and IsEmpty() report buckets, Len() reports stored values.
//
// Complexity:
//
//   - Enqueue: O(1) into an existing bucket, O(log B) for a new one.
//   - Dequeue: O(1) amortised, O(log B) when a bucket is exhausted.
//
// Errors:
//
//   - Dequeue and Peek on an empty queue panic with ErrEmptyQueue; the caller
//     must check IsEmpty first.
package pqueue
