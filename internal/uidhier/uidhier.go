// Package uidhier implements the UID Hierarchy (spec.md §4.E): an
// in-memory Study → Series → Instance tree that the retrieval orchestrator
// (internal/retrieval) populates from C-FIND results and updates from
// C-MOVE sub-operation counters.
package uidhier

import "sync"

// MoveStatus is the subset of a C-MOVE response's DIMSE sub-operation
// counters UpdateMoveStates needs. Both dimse/scu.MoveProgress and
// dimse/scp.MoveResponse carry the same four fields.
type MoveStatus struct {
	Completed uint16
	Failed    uint16
	Remaining uint16
	Warning   uint16
}

// InstanceUIDHierarchy is a leaf: one SOP instance known to be pending or
// retrieved for a study.
type InstanceUIDHierarchy struct {
	SOPInstanceUID string
}

// SeriesUIDHierarchy owns the instances within one series of a study.
type SeriesUIDHierarchy struct {
	SeriesUID string
	Instances map[string]*InstanceUIDHierarchy
}

// FindInstance does an O(1) lookup within this series.
func (s *SeriesUIDHierarchy) FindInstance(uid string) (*InstanceUIDHierarchy, bool) {
	inst, ok := s.Instances[uid]
	return inst, ok
}

// StudyUIDHierarchy tracks one study's retrieval progress: the aggregate
// DIMSE sub-operation counters from the most recent C-MOVE response, the
// last error observed, and its owned Series children (spec.md §4.E).
type StudyUIDHierarchy struct {
	mu sync.Mutex

	StudyUID   string
	PatientID  string
	LastError  string
	Pending    int
	Completed  uint16
	Failed     uint16
	Remaining  uint16
	Warning    uint16

	Series map[string]*SeriesUIDHierarchy
}

// NewStudyUIDHierarchy returns an empty hierarchy rooted at studyUID.
func NewStudyUIDHierarchy(studyUID, patientID string) *StudyUIDHierarchy {
	return &StudyUIDHierarchy{
		StudyUID:  studyUID,
		PatientID: patientID,
		Series:    make(map[string]*SeriesUIDHierarchy),
	}
}

// EnsureSeries returns (creating if absent) the series child for seriesUID.
func (h *StudyUIDHierarchy) EnsureSeries(seriesUID string) *SeriesUIDHierarchy {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.Series[seriesUID]
	if !ok {
		s = &SeriesUIDHierarchy{SeriesUID: seriesUID, Instances: make(map[string]*InstanceUIDHierarchy)}
		h.Series[seriesUID] = s
	}
	return s
}

// AddInstance records sopUID as pending under seriesUID, creating the
// series if needed.
func (h *StudyUIDHierarchy) AddInstance(seriesUID, sopUID string) {
	s := h.EnsureSeries(seriesUID)
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := s.Instances[sopUID]; !ok {
		s.Instances[sopUID] = &InstanceUIDHierarchy{SOPInstanceUID: sopUID}
		h.Pending++
	}
}

// SetLastError records the most recent error message for this study.
func (h *StudyUIDHierarchy) SetLastError(msg string) {
	h.mu.Lock()
	h.LastError = msg
	h.mu.Unlock()
}

// UpdateMoveStates applies a C-MOVE response's sub-operation counters
// (spec.md §4.E). Peers may report out of order on async associations, so
// each counter only ever advances to the maximum of observed vs current --
// it never regresses.
func (h *StudyUIDHierarchy) UpdateMoveStates(status MoveStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Completed = maxU16(h.Completed, status.Completed)
	h.Failed = maxU16(h.Failed, status.Failed)
	h.Remaining = maxU16(h.Remaining, status.Remaining)
	h.Warning = maxU16(h.Warning, status.Warning)
}

// FindInstance searches every owned series for sopUID (spec.md §4.E,
// O(series)).
func (h *StudyUIDHierarchy) FindInstance(sopUID string) (*InstanceUIDHierarchy, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.Series {
		if inst, ok := s.Instances[sopUID]; ok {
			return inst, true
		}
	}
	return nil, false
}

func maxU16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
