package toydiff

import "io"

// DiffFeeder turns a feeder of membership snapshots into a feeder of
// Add/Remove actions, each relative to the previous snapshot. It is a
// Feeder[Action[T]] itself, so it composes with anything downstream.
//
// A DiffFeeder is single-owner: pulls must not be issued concurrently
// or reentrantly, same as for any Feeder.
type DiffFeeder[T comparable] struct {
	upstream Feeder[[]T]
	diff     differ[T]
	ended    bool
}

// Diff wraps an upstream snapshot feeder with a fresh, empty differ.
// The very first snapshot therefore yields only Adds.
func Diff[T comparable](upstream Feeder[[]T]) *DiffFeeder[T] {
	return &DiffFeeder[T]{upstream: upstream}
}

// Feed returns the next membership action. When the current batch is
// drained it pulls the upstream, possibly through several no-change
// snapshots, until an action shows up. ErrWouldBlock and any other
// non-EOF upstream error are forwarded unchanged and leave the state
// untouched; pulling may resume afterwards. Once the upstream returns
// io.EOF the DiffFeeder ends for good: no trailing Removes are made
// up for the elements still present, and every later call returns
// io.EOF again.
func (df *DiffFeeder[T]) Feed() (a Action[T], err error) {
	for {
		if a, ok := df.diff.next(); ok {
			return a, nil
		}
		if df.ended {
			return a, io.EOF
		}
		snapshot, err := df.upstream.Feed()
		if err == io.EOF {
			df.ended = true
			continue
		} else if err != nil {
			return a, err
		}
		df.diff.update(snapshot)
	}
}

// Size forwards the upstream's remaining-snapshot estimate, or 0 when
// the upstream offers none. One snapshot can expand into zero or many
// actions, so this is a hint at best.
func (df *DiffFeeder[T]) Size() int {
	if sizer, ok := df.upstream.(Sizer); ok {
		return sizer.Size()
	}
	return 0
}

// Close ends the feed and closes the upstream if it is a Closer.
// Closing is never required; dropping a DiffFeeder leaks nothing.
func (df *DiffFeeder[T]) Close() error {
	df.ended = true
	if closer, ok := df.upstream.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
