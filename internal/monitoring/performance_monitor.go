// Package monitoring tracks frame and render timings for the viewer HUD.
package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// smoothing is the weight of the newest sample in the rolling averages.
const smoothing = 0.1

// PerformanceMonitor tracks frame and render timings
type PerformanceMonitor struct {
	frameCount  atomic.Uint64
	frameTime   atomic.Uint64 // nanoseconds, last frame
	renderTime  atomic.Uint64 // nanoseconds, last render call
	renderCount atomic.Uint64

	mutex         sync.RWMutex
	avgFrameTime  float64 // nanoseconds
	avgRenderTime float64 // nanoseconds
	startTime     time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{startTime: time.Now()}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: pm, startTime: time.Now()}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.RecordFrame(time.Since(ft.startTime))
}

// RenderTimer helps measure one render call
type RenderTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartRender begins render timing
func (pm *PerformanceMonitor) StartRender() *RenderTimer {
	return &RenderTimer{monitor: pm, startTime: time.Now()}
}

// EndRender completes render timing
func (rt *RenderTimer) EndRender() {
	rt.monitor.RecordRender(time.Since(rt.startTime))
}

// RecordFrame adds one frame duration sample.
func (pm *PerformanceMonitor) RecordFrame(d time.Duration) {
	pm.frameTime.Store(uint64(d.Nanoseconds()))
	n := pm.frameCount.Add(1)

	pm.mutex.Lock()
	pm.avgFrameTime = rolling(pm.avgFrameTime, float64(d.Nanoseconds()), n)
	pm.mutex.Unlock()
}

// RecordRender adds one render duration sample.
func (pm *PerformanceMonitor) RecordRender(d time.Duration) {
	pm.renderTime.Store(uint64(d.Nanoseconds()))
	n := pm.renderCount.Add(1)

	pm.mutex.Lock()
	pm.avgRenderTime = rolling(pm.avgRenderTime, float64(d.Nanoseconds()), n)
	pm.mutex.Unlock()
}

func rolling(avg, sample float64, n uint64) float64 {
	if n <= 1 {
		return sample
	}
	return avg + smoothing*(sample-avg)
}

// Metrics is a snapshot of the monitor
type Metrics struct {
	FrameCount    uint64
	FramesPerSec  float64
	AvgFrameTime  time.Duration
	AvgRenderTime time.Duration
	LastRender    time.Duration
	Uptime        time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() Metrics {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	fps := 0.0
	if pm.avgFrameTime > 0 {
		fps = float64(time.Second) / pm.avgFrameTime
	}
	return Metrics{
		FrameCount:    pm.frameCount.Load(),
		FramesPerSec:  fps,
		AvgFrameTime:  time.Duration(pm.avgFrameTime),
		AvgRenderTime: time.Duration(pm.avgRenderTime),
		LastRender:    time.Duration(pm.renderTime.Load()),
		Uptime:        time.Since(pm.startTime),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// CheckPerformanceAlerts reports when the averaged frame rate falls below minFPS.
func (pm *PerformanceMonitor) CheckPerformanceAlerts(minFPS float64) []PerformanceAlert {
	m := pm.GetCurrentMetrics()
	if m.FrameCount == 0 || m.FramesPerSec >= minFPS {
		return nil
	}
	return []PerformanceAlert{{
		Type:      "low_fps",
		Message:   "Frame rate is below target",
		Value:     m.FramesPerSec,
		Threshold: minFPS,
	}}
}
