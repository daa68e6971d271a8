package quno

import "sync"

/*
Metrics counts the work done by the engine. A nil *Metrics is valid and
records nothing, so registers only pay for it when one is attached.
*/
type Metrics struct {
	mu sync.RWMutex

	GatesApplied       int64
	Collapses          int64
	AmplificationRuns  int64
	GroverIterations   int64
	ShotsTaken         int64
	EntangledPairs     int64
	PhaseRotations     int64
	LastIterationCount int
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordGate() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GatesApplied++
}

func (m *Metrics) recordCollapse() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Collapses++
}

func (m *Metrics) recordAmplification(iterations, shots int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AmplificationRuns++
	m.GroverIterations += int64(iterations)
	m.ShotsTaken += int64(shots)
	m.LastIterationCount = iterations
}

func (m *Metrics) recordEntanglement() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntangledPairs++
}

func (m *Metrics) recordRotation() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PhaseRotations++
}

// ExportMetrics returns a snapshot keyed the way the counters are reported.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"gates_applied":        m.GatesApplied,
		"collapses":            m.Collapses,
		"amplification_runs":   m.AmplificationRuns,
		"grover_iterations":    m.GroverIterations,
		"shots_taken":          m.ShotsTaken,
		"entangled_pairs":      m.EntangledPairs,
		"phase_rotations":      m.PhaseRotations,
		"last_iteration_count": m.LastIterationCount,
	}
}
