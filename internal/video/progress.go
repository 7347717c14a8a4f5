package video

import "sync"

// Phase identifies one stage of the upload pipeline
type Phase string

const (
	PhaseValidating          Phase = "validating"
	PhaseUploadingMedia      Phase = "uploading-media"
	PhaseGeneratingThumbnail Phase = "generating-thumbnail"
	PhasePersistingRecord    Phase = "persisting-record"
	PhaseFinalizing          Phase = "finalizing"
)

// phaseFloors maps each phase to the minimum percentage reported once the
// phase begins. Byte-level transfer progress fills the span between floors;
// the floors themselves are coarse, not byte-accurate.
var phaseFloors = map[Phase]int{
	PhaseValidating:          0,
	PhaseUploadingMedia:      20,
	PhaseGeneratingThumbnail: 40,
	PhasePersistingRecord:    60,
	PhaseFinalizing:          80,
}

// phaseOrder fixes the strict sequence of pipeline phases
var phaseOrder = []Phase{
	PhaseValidating,
	PhaseUploadingMedia,
	PhaseGeneratingThumbnail,
	PhasePersistingRecord,
	PhaseFinalizing,
}

// ProgressUpdate is one (phase, percentage) observation
type ProgressUpdate struct {
	AttemptID string `json:"attemptId"`
	Phase     Phase  `json:"phase"`
	Percent   int    `json:"percent"`
}

// ProgressReporter tracks upload progress through the five ordered phases.
// The reported percentage never decreases within an attempt and reaches 100
// exactly once, at completion.
type ProgressReporter struct {
	mu        sync.Mutex
	attemptID string
	phase     Phase
	percent   int
	done      bool
	onUpdate  func(ProgressUpdate)
}

// NewProgressReporter creates a reporter for one upload attempt. onUpdate,
// when non-nil, observes every emitted (phase, percent) tuple.
func NewProgressReporter(attemptID string, onUpdate func(ProgressUpdate)) *ProgressReporter {
	return &ProgressReporter{
		attemptID: attemptID,
		phase:     PhaseValidating,
		onUpdate:  onUpdate,
	}
}

// Advance moves the reporter into the given phase, raising the percentage to
// the phase floor. Moving to an earlier phase is a no-op.
func (r *ProgressReporter) Advance(phase Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done || phaseIndex(phase) < phaseIndex(r.phase) {
		return
	}

	r.phase = phase
	if floor := phaseFloors[phase]; floor > r.percent {
		r.percent = floor
	}
	r.emit()
}

// Report raises the percentage within the current phase. Values below the
// current percentage or beyond the next phase floor are clamped.
func (r *ProgressReporter) Report(percent int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return
	}

	if ceiling := r.phaseCeiling(); percent > ceiling {
		percent = ceiling
	}
	if percent <= r.percent {
		return
	}

	r.percent = percent
	r.emit()
}

// Finish marks the attempt complete at 100 percent
func (r *ProgressReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return
	}
	r.done = true
	r.percent = 100
	r.emit()
}

// Snapshot returns the current (phase, percent) tuple
func (r *ProgressReporter) Snapshot() ProgressUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ProgressUpdate{AttemptID: r.attemptID, Phase: r.phase, Percent: r.percent}
}

func (r *ProgressReporter) emit() {
	if r.onUpdate != nil {
		r.onUpdate(ProgressUpdate{AttemptID: r.attemptID, Phase: r.phase, Percent: r.percent})
	}
}

// phaseCeiling returns the highest percentage reportable inside the current
// phase: the next phase's floor, or 100 for the final phase.
func (r *ProgressReporter) phaseCeiling() int {
	idx := phaseIndex(r.phase)
	if idx >= 0 && idx+1 < len(phaseOrder) {
		return phaseFloors[phaseOrder[idx+1]]
	}
	return 100
}

func phaseIndex(phase Phase) int {
	for i, p := range phaseOrder {
		if p == phase {
			return i
		}
	}
	return -1
}
