// Package export implements the Export Orchestrator (spec.md §4.G):
// export_patients walks each patient's stored instances, pre-flight checks
// existence at the destination, and sends the remainder in batches,
// publishing progress on a response channel.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"cloud.google.com/go/storage"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dimse/scu"
	"github.com/codeninja55/go-radx/internal/rlog"
)

// Destination selects where export_patients sends files.
type Destination struct {
	// SCP, when non-empty, is a remote AE export destination; files are
	// sent via C-STORE after a C-FIND pre-flight check.
	SCP *ScpDestination
	// Bucket, when non-empty, is an object-store (GCS, substituting for
	// the spec's S3) destination.
	Bucket *BucketDestination
}

// ScpDestination names a remote SCP to export to.
type ScpDestination struct {
	NewClient   func() *scu.Client
	SOPClassUID string
}

// BucketDestination names an object-store bucket/prefix to export to.
type BucketDestination struct {
	Client        *storage.Client
	Bucket        string
	Prefix        string
	UserDirectory string
}

// Request is export_patients' argument (spec.md §4.G).
type Request struct {
	AnonPatientIDs []string
	Destination    Destination
}

// PatientResponse is one ExportPatientResponse event (spec.md §4.G step 3).
type PatientResponse struct {
	PatientID string
	FilesSent int
	Error     error
	Complete  bool
}

// Config wires the orchestrator's dependencies.
type Config struct {
	StorageDir  string
	Concurrency int // default 4
	BatchSize   int // default from config.Model.ExportBatchSize
	Logger      *rlog.Logger
}

// Orchestrator drives export_patients.
type Orchestrator struct {
	cfg     Config
	aborted atomic.Bool
}

// New builds an Orchestrator.
func New(cfg Config) *Orchestrator {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 25
	}
	if cfg.Logger == nil {
		cfg.Logger = rlog.New("export", "error")
	}
	return &Orchestrator{cfg: cfg}
}

// AbortExport halts new batches; in-flight batches still complete (spec.md
// §4.G).
func (o *Orchestrator) AbortExport() { o.aborted.Store(true) }

// ExportPatients runs the per-patient pipeline concurrently up to
// cfg.Concurrency, publishing a PatientResponse per patient on responses.
func (o *Orchestrator) ExportPatients(ctx context.Context, req Request, responses chan<- PatientResponse) {
	sem := make(chan struct{}, o.cfg.Concurrency)
	var wg sync.WaitGroup
	for _, patientID := range req.AnonPatientIDs {
		if o.aborted.Load() {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(patientID string) {
			defer wg.Done()
			defer func() { <-sem }()
			responses <- o.exportOnePatient(ctx, req, patientID)
		}(patientID)
	}
	wg.Wait()
}

func (o *Orchestrator) exportOnePatient(ctx context.Context, req Request, patientID string) PatientResponse {
	files, err := o.enumerateFiles(patientID)
	if err != nil {
		return PatientResponse{PatientID: patientID, Error: err}
	}

	pending := o.preflight(ctx, req.Destination, patientID, files)

	resp := PatientResponse{PatientID: patientID}
	for i := 0; i < len(pending); i += o.cfg.BatchSize {
		if o.aborted.Load() {
			break
		}
		end := i + o.cfg.BatchSize
		if end > len(pending) {
			end = len(pending)
		}
		for _, path := range pending[i:end] {
			if err := o.sendFile(ctx, req.Destination, patientID, path); err != nil {
				resp.Error = err
				o.cfg.Logger.Errorf("send", "patient %s file %s: %v", patientID, path, err)
				continue
			}
			resp.FilesSent++
		}
	}
	resp.Complete = resp.Error == nil
	return resp
}

// enumerateFiles lists every .dcm file under
// {storage_dir}/{anon_patient_id}/** (step 1).
func (o *Orchestrator) enumerateFiles(patientID string) ([]string, error) {
	root := filepath.Join(o.cfg.StorageDir, patientID)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".dcm") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// preflight filters out files already present at the destination (step 2).
func (o *Orchestrator) preflight(ctx context.Context, dest Destination, patientID string, files []string) []string {
	var pending []string
	for _, path := range files {
		exists, err := o.existsAtDestination(ctx, dest, patientID, path)
		if err != nil {
			o.cfg.Logger.Errorf("preflight", "%s: %v", path, err)
			pending = append(pending, path)
			continue
		}
		if !exists {
			pending = append(pending, path)
		}
	}
	return pending
}

func (o *Orchestrator) existsAtDestination(ctx context.Context, dest Destination, patientID, path string) (bool, error) {
	if dest.Bucket != nil {
		key := o.objectKey(dest.Bucket, patientID, path)
		_, err := dest.Bucket.Client.Bucket(dest.Bucket.Bucket).Object(key).Attrs(ctx)
		if err == storage.ErrObjectNotExist {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
	if dest.SCP != nil {
		sopInstanceUID, _, err := readUIDs(path)
		if err != nil {
			return false, err
		}
		client := dest.SCP.NewClient()
		if err := client.Connect(ctx); err != nil {
			return false, err
		}
		defer client.Close(ctx)
		found := false
		query := dicom.NewDataSet()
		err = client.Find(ctx, "IMAGE", dest.SCP.SOPClassUID, query, func(ds *dicom.DataSet) error {
			if v, ok := uidFromDataSet(ds); ok && v == sopInstanceUID {
				found = true
			}
			return nil
		})
		return found, err
	}
	return false, nil
}

// sendFile delivers one anonymized instance to the configured destination
// (step 3).
func (o *Orchestrator) sendFile(ctx context.Context, dest Destination, patientID, path string) error {
	if dest.Bucket != nil {
		return o.sendToBucket(ctx, dest.Bucket, patientID, path)
	}
	if dest.SCP != nil {
		return o.sendToSCP(ctx, dest.SCP, path)
	}
	return fmt.Errorf("export: no destination configured")
}

func (o *Orchestrator) sendToBucket(ctx context.Context, dest *BucketDestination, patientID, path string) error {
	key := o.objectKey(dest, patientID, path)
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from our own storage tree walk
	if err != nil {
		return err
	}
	w := dest.Client.Bucket(dest.Bucket).Object(key).NewWriter(ctx)
	w.ContentType = "application/dicom"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (o *Orchestrator) sendToSCP(ctx context.Context, dest *ScpDestination, path string) error {
	ds, err := dicom.ParseFile(path)
	if err != nil {
		return err
	}
	sopInstanceUID, _ := keywordString(ds, "SOPInstanceUID")
	sopClassUID, _ := keywordString(ds, "SOPClassUID")
	client := dest.NewClient()
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Close(ctx)
	return client.Store(ctx, ds, sopClassUID, sopInstanceUID)
}

// objectKey builds the S3/GCS key named in spec.md §4.G step 3:
// {s3_prefix}/{user_directory}/{anon_patient_id}/{anon_study_uid}/{anon_series_uid}/{anon_sop_instance_uid}.dcm
func (o *Orchestrator) objectKey(dest *BucketDestination, patientID, path string) string {
	rel, err := filepath.Rel(filepath.Join(o.cfg.StorageDir, patientID), path)
	if err != nil {
		rel = filepath.Base(path)
	}
	parts := []string{dest.Prefix, dest.UserDirectory, patientID, filepath.ToSlash(rel)}
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "/")
}

func readUIDs(path string) (sopInstanceUID, sopClassUID string, err error) {
	ds, err := dicom.ParseFile(path)
	if err != nil {
		return "", "", err
	}
	sopInstanceUID, _ = keywordString(ds, "SOPInstanceUID")
	sopClassUID, _ = keywordString(ds, "SOPClassUID")
	return sopInstanceUID, sopClassUID, nil
}

func uidFromDataSet(ds *dicom.DataSet) (string, bool) {
	return keywordString(ds, "SOPInstanceUID")
}

func keywordString(ds *dicom.DataSet, keyword string) (string, bool) {
	elem, err := ds.GetByKeyword(keyword)
	if err != nil {
		return "", false
	}
	return elem.Value().String(), true
}
