package toydiff

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelayAndPumpN(t *testing.T) {
	from := FeedSlice(1, 2, 3)
	to := SliceDrainer[int]{}

	assert.Nil(t, Relay[int](from, &to))
	assert.Equal(t, []int{1}, to.Vals)

	assert.Nil(t, PumpN[int](from, &to, 2))
	assert.Equal(t, []int{1, 2, 3}, to.Vals)

	assert.Equal(t, io.EOF, PumpN[int](from, &to, 1))
}

func TestPump(t *testing.T) {
	from := FeedSlice("x", "y")
	to := SliceDrainer[string]{}
	assert.Equal(t, io.EOF, Pump[string](from, &to))
	assert.Equal(t, []string{"x", "y"}, to.Vals)
}

func TestPumpThenClose(t *testing.T) {
	from := Queue[int]{}
	assert.Nil(t, from.Drain(1))
	assert.Nil(t, from.Drain(2))
	assert.Nil(t, from.Close())

	to := Queue[int]{}
	err := PumpThenClose[int](&from, &to)
	assert.Equal(t, io.EOF, err)

	v, err := to.Feed()
	assert.Nil(t, err)
	assert.Equal(t, 1, v)
	v, err = to.Feed()
	assert.Nil(t, err)
	assert.Equal(t, 2, v)
	_, err = to.Feed()
	assert.Equal(t, io.EOF, err)
}
