package systems

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobSystemValidation(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)

	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystemRunsEveryJob(t *testing.T) {
	js, err := NewJobSystem(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, js.Workers())

	const jobs = 50
	var (
		wg  sync.WaitGroup
		sum atomic.Int64
	)
	for i := 1; i <= jobs; i++ {
		wg.Add(1)
		err := js.Submit(context.Background(), metadata.JobTask{
			InputParams: i,
			OnStart: func(params interface{}, out chan<- interface{}) error {
				out <- params.(int) * 2
				return nil
			},
			OnComplete: func(out <-chan interface{}) {
				sum.Add(int64((<-out).(int)))
			},
			OnCompletionCallback: wg.Done,
		})
		require.NoError(t, err)
	}
	wg.Wait()
	require.NoError(t, js.Shutdown())

	assert.Equal(t, int64(jobs*(jobs+1)), sum.Load())
}

func TestJobSystemFailure(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)
	defer js.Shutdown()

	boom := errors.New("boom")
	done := make(chan error, 1)
	err = js.Submit(context.Background(), metadata.JobTask{
		OnStart: func(_ interface{}, out chan<- interface{}) error {
			out <- "partial"
			return boom
		},
		OnComplete: func(<-chan interface{}) {
			t.Error("OnComplete called for a failed job")
		},
		OnFailure: func(out <-chan interface{}) {
			err, _ := (<-out).(error)
			done <- err
		},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, <-done, boom)
}

func TestJobSystemSubmitAfterShutdown(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)
	require.NoError(t, js.Shutdown())
	require.NoError(t, js.Shutdown())

	err = js.Submit(context.Background(), metadata.JobTask{
		OnStart: func(interface{}, chan<- interface{}) error { return nil },
	})
	assert.ErrorIs(t, err, ErrJobSystemClosed)
}

func TestJobSystemRequiresEntryPoint(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)
	defer js.Shutdown()

	assert.ErrorIs(t, js.Submit(context.Background(), metadata.JobTask{}), ErrNoEntryPoint)
}

func TestJobSystemShutdownDrainsQueue(t *testing.T) {
	js, err := NewJobSystem(1, 8)
	require.NoError(t, err)

	var ran atomic.Int32
	for i := 0; i < 8; i++ {
		require.NoError(t, js.Submit(context.Background(), metadata.JobTask{
			OnStart: func(interface{}, chan<- interface{}) error {
				ran.Add(1)
				return nil
			},
		}))
	}
	require.NoError(t, js.Shutdown())
	assert.Equal(t, int32(8), ran.Load())
}
