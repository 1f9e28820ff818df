// Package retrieval implements the Retrieval Orchestrator (spec.md §4.F):
// move_studies drives a C-FIND hierarchy probe, reconciles against the PHI
// Index Store, issues C-MOVE at the requested level, and steps down one
// level on partial failure.
package retrieval

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/codeninja55/go-radx/dimse/scu"
	"github.com/codeninja55/go-radx/internal/rlog"
	"github.com/codeninja55/go-radx/internal/uidhier"
)

// queryRetrieveLevel is (0008,0052) QR Level, not in the base tag
// dictionary since it is a Query/Retrieve-specific attribute rather than a
// composite IOD attribute.
var queryRetrieveLevel = tag.New(0x0008, 0x0052)

// Level is a C-MOVE retrieval level.
type Level string

const (
	LevelStudy    Level = "STUDY"
	LevelSeries   Level = "SERIES"
	LevelInstance Level = "INSTANCE"
)

func (l Level) stepDown() (Level, bool) {
	switch l {
	case LevelStudy:
		return LevelSeries, true
	case LevelSeries:
		return LevelInstance, true
	default:
		return "", false
	}
}

// Index is the subset of phiindex.Store the orchestrator needs for
// reconciliation.
type Index interface {
	StoredInstanceUIDs(ptid, studyUID string) map[string]struct{}
	GetStoredInstanceCount(ptid, studyUID, seriesUID string) int
}

// QueueProbe reports the ingest pipeline's current backlog, used by
// post-reconciliation to wait for in-flight stores to settle.
type QueueProbe interface {
	QueueLen() int
}

// StudyRequest names one study to move.
type StudyRequest struct {
	PatientID string
	StudyUID  string
}

// Request is move_studies' single argument (spec.md §4.F).
type Request struct {
	SOPClassUID     string // Study Root Query/Retrieve Find/Move SOP class
	DestinationAE   string
	Level           Level
	Studies         []StudyRequest
}

// Config wires the dependencies move_studies needs.
type Config struct {
	NewClient      func() *scu.Client
	Index          Index
	Queue          QueueProbe
	Concurrency    int // default 2
	ReconcileGrace time.Duration
	Logger         *rlog.Logger
}

// Orchestrator drives move_studies.
type Orchestrator struct {
	cfg     Config
	aborted atomic.Bool
}

// New builds an Orchestrator.
func New(cfg Config) *Orchestrator {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 2
	}
	if cfg.Logger == nil {
		cfg.Logger = rlog.New("retrieval", "error")
	}
	return &Orchestrator{cfg: cfg}
}

// AbortMove sets the cooperative cancellation flag (spec.md §4.F). In
// flight associations close via their context; MoveStudies returns once
// they have.
func (o *Orchestrator) AbortMove() { o.aborted.Store(true) }

// MoveStudies drives the full algorithm of spec.md §4.F for every study in
// req, up to cfg.Concurrency studies in flight at once.
func (o *Orchestrator) MoveStudies(ctx context.Context, req Request) []*uidhier.StudyUIDHierarchy {
	results := make([]*uidhier.StudyUIDHierarchy, len(req.Studies))
	sem := make(chan struct{}, o.cfg.Concurrency)
	var wg sync.WaitGroup

	for i, sr := range req.Studies {
		if o.aborted.Load() {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, sr StudyRequest) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = o.moveOneStudy(ctx, req, sr)
		}(i, sr)
	}
	wg.Wait()
	return results
}

func (o *Orchestrator) moveOneStudy(ctx context.Context, req Request, sr StudyRequest) *uidhier.StudyUIDHierarchy {
	h := uidhier.NewStudyUIDHierarchy(sr.StudyUID, sr.PatientID)
	if o.aborted.Load() {
		h.SetLastError("aborted before dispatch")
		return h
	}

	client := o.cfg.NewClient()
	if err := client.Connect(ctx); err != nil {
		h.SetLastError(fmt.Sprintf("connect: %v", err))
		return h
	}
	defer client.Close(ctx)

	// Step 1: hierarchy probe.
	matched := o.probeHierarchy(ctx, client, req, h)
	if !matched {
		h.SetLastError("peer returned zero matches")
		return h
	}

	// Step 2: pre-reconciliation, then step 3-5 with one automatic
	// step-down on gaps.
	level := req.Level
	for attempt := 0; attempt < 2; attempt++ {
		pending := o.pendingSet(h, sr, level)
		if len(pending) == 0 {
			return h
		}
		o.issueMoves(ctx, client, req, sr, level, pending, h)
		o.waitForQueueDrain(ctx)

		gaps := o.pendingSet(h, sr, level)
		if len(gaps) == 0 {
			return h
		}
		next, ok := level.stepDown()
		if !ok || attempt == 1 {
			h.SetLastError(fmt.Sprintf("%d instances still pending after retries", len(gaps)))
			return h
		}
		level = next
	}
	return h
}

// probeHierarchy issues C-FIND at series level, then always enumerates each
// series' instances at image level. The enumeration is unconditional
// (independent of req.Level) because pendingSet needs a target instance
// count at every granularity: the study-level total (h.Pending), each
// series' own target (len(s.Instances)), and the exact missing SOP
// Instance UIDs an automatic step-down to INSTANCE level retries.
func (o *Orchestrator) probeHierarchy(ctx context.Context, client *scu.Client, req Request, h *uidhier.StudyUIDHierarchy) bool {
	matched := false
	seriesQuery := newQuery("SERIES", h.StudyUID, "")
	err := client.Find(ctx, "SERIES", req.SOPClassUID, seriesQuery, func(ds *dicom.DataSet) error {
		matched = true
		seriesUID, _ := elementString(ds, tag.SeriesInstanceUID)
		if seriesUID == "" {
			return nil
		}
		h.EnsureSeries(seriesUID)
		instQuery := newQuery("IMAGE", h.StudyUID, seriesUID)
		return client.Find(ctx, "IMAGE", req.SOPClassUID, instQuery, func(instDS *dicom.DataSet) error {
			sopUID, _ := elementString(instDS, tag.SOPInstanceUID)
			if sopUID != "" {
				h.AddInstance(seriesUID, sopUID)
			}
			return nil
		})
	})
	if err != nil {
		o.cfg.Logger.Errorf("find", "study %s: %v", h.StudyUID, err)
	}
	return matched
}

// pendingSet diffs the study's known UIDs at the given level against what
// A already reports as stored (step 2/4: pre- and post-reconciliation).
func (o *Orchestrator) pendingSet(h *uidhier.StudyUIDHierarchy, sr StudyRequest, level Level) []string {
	stored := o.cfg.Index.StoredInstanceUIDs(sr.PatientID, sr.StudyUID)
	switch level {
	case LevelStudy:
		if len(stored) > 0 && h.Pending > 0 && len(stored) >= h.Pending {
			return nil
		}
		return []string{sr.StudyUID}
	case LevelSeries:
		var pending []string
		for seriesUID, s := range h.Series {
			target := len(s.Instances)
			stored := o.cfg.Index.GetStoredInstanceCount(sr.PatientID, sr.StudyUID, seriesUID)
			if target > 0 && stored >= target {
				continue
			}
			pending = append(pending, seriesUID)
		}
		return pending
	default: // LevelInstance
		var pending []string
		for _, s := range h.Series {
			for sopUID := range s.Instances {
				if _, ok := stored[sopUID]; !ok {
					pending = append(pending, sopUID)
				}
			}
		}
		return pending
	}
}

// issueMoves sends one C-MOVE per pending unit at level, updating h's
// counters from each response (step 3).
func (o *Orchestrator) issueMoves(ctx context.Context, client *scu.Client, req Request, sr StudyRequest, level Level, pending []string, h *uidhier.StudyUIDHierarchy) {
	for _, uidStr := range pending {
		if o.aborted.Load() {
			return
		}
		query := moveQuery(level, sr.StudyUID, uidStr)
		result, err := client.Move(ctx, req.SOPClassUID, req.DestinationAE, query, func(p scu.MoveProgress) {
			h.UpdateMoveStates(uidhier.MoveStatus{Completed: p.Completed, Failed: p.Failed, Remaining: p.Remaining, Warning: p.Warning})
		})
		if err != nil {
			o.cfg.Logger.Errorf("move", "study %s unit %s: %v", sr.StudyUID, uidStr, err)
			continue
		}
		h.UpdateMoveStates(uidhier.MoveStatus{Completed: result.Completed, Failed: result.Failed, Warning: result.Warning})
	}
}

// waitForQueueDrain blocks until the ingest queue empties or the
// reconciliation grace period elapses (step 4).
func (o *Orchestrator) waitForQueueDrain(ctx context.Context) {
	if o.cfg.Queue == nil {
		return
	}
	deadline := time.Now().Add(o.cfg.ReconcileGrace)
	for time.Now().Before(deadline) {
		if o.cfg.Queue.QueueLen() == 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func newQuery(level, studyUID, seriesUID string) *dicom.DataSet {
	ds := dicom.NewDataSet()
	setString(ds, queryRetrieveLevel, vr.CodeString, level)
	setString(ds, tag.StudyInstanceUID, vr.UniqueIdentifier, studyUID)
	if seriesUID != "" {
		setString(ds, tag.SeriesInstanceUID, vr.UniqueIdentifier, seriesUID)
	}
	return ds
}

func moveQuery(level Level, studyUID, uidStr string) *dicom.DataSet {
	ds := dicom.NewDataSet()
	setString(ds, queryRetrieveLevel, vr.CodeString, string(level))
	switch level {
	case LevelStudy:
		setString(ds, tag.StudyInstanceUID, vr.UniqueIdentifier, studyUID)
	case LevelSeries:
		setString(ds, tag.StudyInstanceUID, vr.UniqueIdentifier, studyUID)
		setString(ds, tag.SeriesInstanceUID, vr.UniqueIdentifier, uidStr)
	case LevelInstance:
		setString(ds, tag.StudyInstanceUID, vr.UniqueIdentifier, studyUID)
		setString(ds, tag.SOPInstanceUID, vr.UniqueIdentifier, uidStr)
	}
	return ds
}

func setString(ds *dicom.DataSet, t tag.Tag, v vr.VR, s string) {
	val, err := value.NewStringValue(v, []string{s})
	if err != nil {
		return
	}
	elem, err := element.NewElement(t, v, val)
	if err != nil {
		return
	}
	_ = ds.Add(elem)
}

func elementString(ds *dicom.DataSet, t tag.Tag) (string, bool) {
	elem, err := ds.Get(t)
	if err != nil {
		return "", false
	}
	return elem.Value().String(), true
}
