// Package storage implements the on-disk layout for anonymized instances
// (spec.md §4.C): a deterministic path derived purely from anonymized
// identifiers, atomic per-file writes, and a sibling quarantine tree for
// instances that failed anonymization.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/internal/rerr"
)

// privateDirName is the sibling directory holding the PHI Index snapshot,
// CSV exports, and the quarantine tree (spec.md §4.C).
const privateDirName = "private"

// quarantineDirName is private/quarantine/{category}/...
const quarantineDirName = "quarantine"

// Store writes anonymized instances under storageDir using the
// content-addressed path rule and routes anonymization failures into the
// quarantine tree.
type Store struct {
	storageDir string

	mu    sync.Mutex
	stats map[string]int
}

// New returns a Store rooted at storageDir. The private/ sibling tree is
// created lazily on first write.
func New(storageDir string) *Store {
	return &Store{storageDir: storageDir, stats: make(map[string]int)}
}

// PathFor computes the deterministic per-instance path (spec.md §4.C):
//
//	{storage_dir}/{anon_patient_id}/{anon_study_uid}/{anon_series_uid}/{anon_sop_instance_uid}.dcm
func (st *Store) PathFor(anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID string) string {
	return filepath.Join(st.storageDir, anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID+".dcm")
}

// PrivateDir returns the private/ sibling directory under storageDir.
func (st *Store) PrivateDir() string {
	return filepath.Join(st.storageDir, privateDirName)
}

// Write serializes ds to its content-addressed path atomically. A path
// collision (invariant 2 says this should not occur) surfaces as
// STORAGE_ERROR rather than silently overwriting PHI-bearing data.
func (st *Store) Write(ds *dicom.DataSet, anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID string) (string, error) {
	path := st.PathFor(anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID)
	if err := dicom.WriteFileWithOptions(path, ds, dicom.WriteOptions{
		CreateDirs: true,
		Atomic:     true,
		Overwrite:  false,
	}); err != nil {
		return "", rerr.Wrap(rerr.StorageError, fmt.Sprintf("write %s", path), err)
	}
	return path, nil
}

// Quarantine writes the original source bytes under
// private/quarantine/{category}/ for manual review. origName, when
// non-empty, is preserved as a suffix on the generated filename; otherwise
// a timestamp-derived name is used.
func (st *Store) Quarantine(category string, data []byte, origName string) error {
	dir := filepath.Join(st.PrivateDir(), quarantineDirName, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return rerr.Wrap(rerr.StorageError, "create quarantine dir", err)
	}

	name := fmt.Sprintf("%d", time.Now().UnixNano())
	if origName != "" {
		name = name + "_" + filepath.Base(origName)
	}
	path := filepath.Join(dir, name+".dcm")

	if err := writeAtomic(path, data); err != nil {
		return rerr.Wrap(rerr.StorageError, fmt.Sprintf("quarantine %s", path), err)
	}

	st.mu.Lock()
	st.stats[category]++
	st.mu.Unlock()
	return nil
}

// QuarantineStats returns a snapshot of quarantined-file counts per
// category, consumed by create_phi_csv's summary output (SPEC_FULL.md
// §12.5). Quarantined files are never auto-deleted.
func (st *Store) QuarantineStats() map[string]int {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make(map[string]int, len(st.stats))
	for k, v := range st.stats {
		out[k] = v
	}
	return out
}

// writeAtomic writes data to a temp file in path's directory, fsyncs it,
// and renames it into place -- strengthening the "write to a temp name
// then rename" rule of §4.C with an explicit fsync before the rename is
// durable.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := unix.Fsync(int(tmp.Fd())); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
