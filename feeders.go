package toydiff

import "io"

// SliceFeeder feeds the elements of Vals in order, then io.EOF.
type SliceFeeder[V any] struct {
	Vals []V
}

func FeedSlice[V any](vals ...V) *SliceFeeder[V] {
	return &SliceFeeder[V]{Vals: vals}
}

func (sf *SliceFeeder[V]) Feed() (v V, err error) {
	if len(sf.Vals) == 0 {
		err = io.EOF
		return
	}
	v = sf.Vals[0]
	sf.Vals = sf.Vals[1:]
	return
}

func (sf *SliceFeeder[V]) Size() int {
	return len(sf.Vals)
}

// SliceDrainer collects drained values; handy as a terminal sink.
type SliceDrainer[V any] struct {
	Vals []V
}

func (sd *SliceDrainer[V]) Drain(v V) error {
	sd.Vals = append(sd.Vals, v)
	return nil
}
