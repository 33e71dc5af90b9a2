package toydiff

import (
	"errors"
	"io"
)

// Feeder pulls the values of a sequence, one per call.
// A call has exactly one of three outcomes:
//
//	v, nil            the next value
//	zero, ErrWouldBlock   nothing available yet; call again later
//	zero, io.EOF      the sequence is permanently over
//
// Unlike io.Reader, a Feeder never returns a value together with an
// error: a zero value (e.g. an empty snapshot) is meaningful on its
// own. Errors other than io.EOF do not end the sequence; the caller
// may keep pulling.
type Feeder[V any] interface {
	Feed() (v V, err error)
}

type Drainer[V any] interface {
	Drain(v V) error
}

type FeedDrainer[V any] interface {
	Feeder[V]
	Drainer[V]
}

type FeedCloser[V any] interface {
	Feeder[V]
	io.Closer
}

type DrainCloser[V any] interface {
	Drainer[V]
	io.Closer
}

type FeedDrainCloser[V any] interface {
	Feeder[V]
	Drainer[V]
	io.Closer
}

// Sizer is implemented by feeders that can estimate how many values
// remain. The estimate is a hint, never a promise.
type Sizer interface {
	Size() int
}

var ErrWouldBlock = errors.New("the operation would block")
var ErrClosed = errors.New("the queue is closed")

// Relay moves one value from the feeder to the drainer.
func Relay[V any](feeder Feeder[V], drainer Drainer[V]) error {
	v, err := feeder.Feed()
	if err != nil {
		return err
	}
	return drainer.Drain(v)
}

// Pump relays values until either end errs (io.EOF included).
func Pump[V any](feeder Feeder[V], drainer Drainer[V]) (err error) {
	for err == nil {
		err = Relay(feeder, drainer)
	}
	return
}

func PumpN[V any](feeder Feeder[V], drainer Drainer[V], n int) (err error) {
	for err == nil && n > 0 {
		err = Relay(feeder, drainer)
		n--
	}
	return
}

func PumpThenClose[V any](feed FeedCloser[V], drain DrainCloser[V]) error {
	var ferr, derr error
	for ferr == nil && derr == nil {
		var v V
		v, ferr = feed.Feed()
		if ferr == nil {
			derr = drain.Drain(v)
		}
	}
	_ = feed.Close()
	_ = drain.Close()
	if ferr != nil {
		return ferr
	} else {
		return derr
	}
}
