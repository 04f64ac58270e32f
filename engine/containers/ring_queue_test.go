package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	assert.True(t, rq.IsEmpty())

	_, err := rq.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)

	for i := 1; i <= 3; i++ {
		require.NoError(t, rq.Enqueue(i))
	}
	assert.True(t, rq.IsFull())
	assert.ErrorIs(t, rq.Enqueue(4), ErrQueueFull)

	front, err := rq.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	v, err := rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, rq.Enqueue(4))

	var got []int
	rq.Each(func(v int) { got = append(got, v) })
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestRingQueuePushDropsOldest(t *testing.T) {
	rq := NewRingQueue[float64](2)
	rq.Push(1)
	rq.Push(2)
	rq.Push(3)
	assert.Equal(t, 2, rq.Len())

	var got []float64
	rq.Each(func(v float64) { got = append(got, v) })
	assert.Equal(t, []float64{2, 3}, got)

	rq.Clear()
	assert.True(t, rq.IsEmpty())
	rq.Push(5)
	v, err := rq.Peek()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestRingQueueZeroSize(t *testing.T) {
	rq := NewRingQueue[int](0)
	rq.Push(1)
	assert.True(t, rq.IsEmpty())
}
