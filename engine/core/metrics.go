package core

import (
	"sync"

	"github.com/spaghettifunk/geogen/engine/containers"
)

const AVG_COUNT uint8 = 30

// GenerationMetrics keeps a rolling average of per-shape build times
// and running totals of the produced geometry.
type GenerationMetrics struct {
	mutex sync.Mutex

	msTimes      *containers.RingQueue[float64]
	msAvg        float64
	shapes       uint64
	vertexCount  uint64
	indexCount   uint64
	accumulateMS float64
}

func NewGenerationMetrics() *GenerationMetrics {
	return &GenerationMetrics{
		msTimes: containers.NewRingQueue[float64](int(AVG_COUNT)),
	}
}

// Record adds a finished shape build to the metrics.
func (m *GenerationMetrics) Record(elapsedMS float64, vertexCount, indexCount int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.msTimes.Push(elapsedMS)
	sum := 0.0
	m.msTimes.Each(func(ms float64) { sum += ms })
	m.msAvg = sum / float64(m.msTimes.Len())

	m.shapes++
	m.vertexCount += uint64(vertexCount)
	m.indexCount += uint64(indexCount)
	m.accumulateMS += elapsedMS
}

// AverageMS is the mean build time over the last AVG_COUNT shapes.
func (m *GenerationMetrics) AverageMS() float64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.msAvg
}

// Totals returns the number of shapes built and their summed vertex and index counts.
func (m *GenerationMetrics) Totals() (shapes, vertices, indices uint64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.shapes, m.vertexCount, m.indexCount
}

func (m *GenerationMetrics) TotalMS() float64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.accumulateMS
}

func (m *GenerationMetrics) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.msTimes.Clear()
	m.msAvg, m.accumulateMS = 0, 0
	m.shapes, m.vertexCount, m.indexCount = 0, 0, 0
}
