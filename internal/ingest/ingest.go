// Package ingest implements the Ingest Pipeline (spec.md §4.D): a bounded
// FIFO queue fed by the DIMSE SCP's C-STORE handler, a fixed worker pool
// that anonymizes dequeued datasets, and a periodic autosave task for the
// PHI Index Store.
package ingest

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dimse/dimse"
	"github.com/codeninja55/go-radx/dimse/scp"
	"github.com/codeninja55/go-radx/internal/rlog"
)

// Anonymizer is the subset of anonengine.Engine the pipeline drives.
type Anonymizer interface {
	Anonymize(source string, raw []byte, ds *dicom.DataSet) (string, error)
}

// Snapshotter is the subset of phiindex.Store the autosave task drives.
type Snapshotter interface {
	Dirty() bool
	ClearDirty()
}

// job is one queued dataset awaiting anonymization.
type job struct {
	source string
	raw    []byte
	ds     *dicom.DataSet
}

// Config configures a Pipeline.
type Config struct {
	QueueCapacity int
	WorkerCount   int

	WorkerDequeueTimeout time.Duration
	WorkerIdleSleep      time.Duration
	AutosaveInterval     time.Duration

	MemoryBackoffThresholdBytes uint64
	MemoryBackoffSleep          time.Duration
	MemoryBackoffMaxRetries     int

	Anonymizer  Anonymizer
	Snapshotter Snapshotter
	SnapshotPath string
	SaveFunc    func(path string) error

	Logger *rlog.Logger
}

// Pipeline is the ingest pipeline: a bounded queue, a worker pool, and an
// autosave task, wired as the DIMSE SCP server's StoreHandler and
// EchoHandler (spec.md §4.D).
type Pipeline struct {
	cfg Config

	queue  chan job
	active atomic.Bool
	wg     sync.WaitGroup

	availableMemory func() (uint64, error)
}

// New constructs a Pipeline. Call Start to launch its worker and autosave
// goroutines.
func New(cfg Config) *Pipeline {
	if cfg.Logger == nil {
		cfg.Logger = rlog.New("ingest", "error")
	}
	p := &Pipeline{
		cfg:   cfg,
		queue: make(chan job, cfg.QueueCapacity),
		availableMemory: func() (uint64, error) {
			vm, err := mem.VirtualMemory()
			if err != nil {
				return 0, err
			}
			return vm.Available, nil
		},
	}
	return p
}

// Start launches the worker pool and autosave task. Stop drains and joins
// them.
func (p *Pipeline) Start(ctx context.Context) {
	p.active.Store(true)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	p.wg.Add(1)
	go p.autosave(ctx)
}

// Stop clears the active flag; workers exit once the queue has drained, and
// Stop blocks until they (and the autosave task) have returned.
func (p *Pipeline) Stop() {
	p.active.Store(false)
	p.wg.Wait()
}

// HandleStore implements dimse/scp.StoreHandler: the SCP association
// handler's entry point for C-STORE (spec.md §4.D step 1-2).
func (p *Pipeline) HandleStore(ctx context.Context, req *scp.StoreRequest) *scp.StoreResponse {
	if !p.admitUnderMemoryPressure(ctx) {
		return &scp.StoreResponse{Status: dimse.StatusResourceLimitation}
	}
	select {
	case p.queue <- job{source: req.CallingAE, raw: req.RawDataSet, ds: req.DataSet}:
		return &scp.StoreResponse{Status: dimse.StatusSuccess}
	default:
		return &scp.StoreResponse{Status: dimse.StatusResourceLimitation}
	}
}

// HandleEcho implements dimse/scp.EchoHandler: success unconditionally
// while the pipeline is active (spec.md §4.D).
func (p *Pipeline) HandleEcho(ctx context.Context, req *scp.EchoRequest) *scp.EchoResponse {
	return &scp.EchoResponse{Status: dimse.StatusSuccess}
}

// admitUnderMemoryPressure implements step 1: if available memory is below
// the configured threshold, sleep and retry up to a bounded count before
// giving up.
func (p *Pipeline) admitUnderMemoryPressure(ctx context.Context) bool {
	for attempt := 0; attempt < p.cfg.MemoryBackoffMaxRetries; attempt++ {
		available, err := p.availableMemory()
		if err != nil || available >= p.cfg.MemoryBackoffThresholdBytes {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(p.cfg.MemoryBackoffSleep):
		}
	}
	return false
}

// worker implements spec.md §4.D's loop: dequeue with a short timeout,
// anonymize; on an empty queue, sleep the idle interval and retry. Workers
// exit once the pipeline is inactive and the queue has drained.
func (p *Pipeline) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case j := <-p.queue:
			if _, err := p.cfg.Anonymizer.Anonymize(j.source, j.raw, j.ds); err != nil {
				p.cfg.Logger.Errorf("anonymize", "instance from %s: %v", j.source, err)
			}
		case <-ctx.Done():
			return
		case <-time.After(p.cfg.WorkerDequeueTimeout):
			if !p.active.Load() && len(p.queue) == 0 {
				return
			}
			time.Sleep(p.cfg.WorkerIdleSleep)
		}
	}
}

func (p *Pipeline) autosave(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.cfg.AutosaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.trySave()
		case <-ctx.Done():
			p.trySave()
			return
		}
		if !p.active.Load() && len(p.queue) == 0 {
			p.trySave()
			return
		}
	}
}

func (p *Pipeline) trySave() {
	if p.cfg.Snapshotter == nil || !p.cfg.Snapshotter.Dirty() {
		return
	}
	if p.cfg.SaveFunc == nil {
		return
	}
	if err := p.cfg.SaveFunc(p.cfg.SnapshotPath); err != nil {
		p.cfg.Logger.Errorf("autosave", "save %s: %v", p.cfg.SnapshotPath, err)
		return
	}
	p.cfg.Snapshotter.ClearDirty()
}

// QueueLen reports the current number of queued, not-yet-anonymized
// datasets (used by the retrieval orchestrator's post-reconciliation wait,
// spec.md §4.F step 4).
func (p *Pipeline) QueueLen() int {
	return len(p.queue)
}
