package toydiff

import "fmt"

type Kind int8

const (
	Add Kind = iota + 1
	Remove
)

// Action is one element's membership transition between two
// consecutive snapshots.
type Action[T comparable] struct {
	Kind Kind
	Elem T
}

func Added[T comparable](elem T) Action[T] {
	return Action[T]{Kind: Add, Elem: elem}
}

func Removed[T comparable](elem T) Action[T] {
	return Action[T]{Kind: Remove, Elem: elem}
}

func (a Action[T]) String() string {
	switch a.Kind {
	case Add:
		return fmt.Sprintf("Add(%v)", a.Elem)
	case Remove:
		return fmt.Sprintf("Remove(%v)", a.Elem)
	default:
		return fmt.Sprintf("?(%v)", a.Elem)
	}
}

// differ remembers the last snapshot as a set and queues the actions
// of one diff at a time. The queue must be drained before the next
// update; the DiffFeeder pull loop guarantees that.
type differ[T comparable] struct {
	state map[T]struct{}
	queue []Action[T]
}

// update dedupes the snapshot, queues one Remove per disappeared
// element and one Add per new element, and replaces the remembered
// set wholesale. All Removes precede all Adds; order inside each
// group follows map iteration order and is unspecified.
func (d *differ[T]) update(snapshot []T) {
	next := make(map[T]struct{}, len(snapshot))
	for _, elem := range snapshot {
		next[elem] = struct{}{}
	}
	for elem := range d.state {
		if _, stays := next[elem]; !stays {
			d.queue = append(d.queue, Removed(elem))
		}
	}
	for elem := range next {
		if _, known := d.state[elem]; !known {
			d.queue = append(d.queue, Added(elem))
		}
	}
	d.state = next
}

func (d *differ[T]) next() (a Action[T], ok bool) {
	if len(d.queue) == 0 {
		return
	}
	a = d.queue[0]
	d.queue = d.queue[1:]
	ok = true
	return
}
