// Package control implements the Control Plane (spec.md §4.H): binding and
// draining the local SCP, refreshing export credentials, and writing the
// PHI CSV report.
package control

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	gcs "cloud.google.com/go/storage"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/datetime"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/uid"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/codeninja55/go-radx/dimse/scp"
	"github.com/codeninja55/go-radx/dimse/scu"
	"github.com/codeninja55/go-radx/internal/config"
	"github.com/codeninja55/go-radx/internal/phiindex"
	"github.com/codeninja55/go-radx/internal/rlog"
	"github.com/codeninja55/go-radx/internal/storage"
)

// EchoHandler and StoreHandler are satisfied by *ingest.Pipeline; declared
// here, narrowly, so control doesn't need to import internal/ingest just to
// wire a server.
type EchoHandler interface {
	HandleEcho(ctx context.Context, req *scp.EchoRequest) *scp.EchoResponse
}

type StoreHandler interface {
	HandleStore(ctx context.Context, req *scp.StoreRequest) *scp.StoreResponse
}

// Stopper is satisfied by *ingest.Pipeline.
type Stopper interface {
	Stop()
}

// Config wires the Control Plane's dependencies.
type Config struct {
	Model          *config.Model
	Store          *phiindex.Store
	Echo           EchoHandler
	StoreHandler   StoreHandler
	Ingest         Stopper
	AbortRetrieval func() // *retrieval.Orchestrator's AbortMove
	AbortExport    func() // *export.Orchestrator's AbortExport
	StorageDir     string
	NewMoveClient  func() *scu.Client // dials this project's configured export AE
	Logger         *rlog.Logger
}

// Control drives start_scp/stop_scp/refreshExportCredentials/create_phi_csv.
type Control struct {
	cfg    Config
	server *scp.Server

	credMu   sync.Mutex
	oauthCfg *oauth2.Config
	token    *oauth2.Token
}

// New builds a Control.
func New(cfg Config) *Control {
	if cfg.Logger == nil {
		cfg.Logger = rlog.New("control", "error")
	}
	return &Control{cfg: cfg}
}

// StartSCP binds the local AE with negotiated presentation contexts for
// Verification, every configured Storage SOP class, and Study-Root Q/R
// Find/Move (spec.md §4.H).
func (c *Control) StartSCP(ctx context.Context) error {
	contexts := map[string][]string{
		uid.VerificationSOPClass.String():                       c.cfg.Model.TransferSyntaxes,
		uid.StudyRootQueryRetrieveInformationModelFind.String(): c.cfg.Model.TransferSyntaxes,
		uid.StudyRootQueryRetrieveInformationModelMove.String(): c.cfg.Model.TransferSyntaxes,
	}
	for _, sopClass := range c.cfg.Model.StorageClasses {
		contexts[sopClass] = c.cfg.Model.TransferSyntaxes
	}

	server, err := scp.NewServer(scp.Config{
		AETitle:           c.cfg.Model.LocalAE.AETitle,
		ListenAddr:        fmt.Sprintf("%s:%d", c.cfg.Model.LocalAE.Host, c.cfg.Model.LocalAE.Port),
		SupportedContexts: contexts,
		EchoHandler:       c.cfg.Echo,
		StoreHandler:      c.cfg.StoreHandler,
		FindHandler:       c,
		MoveHandler:       c,
	})
	if err != nil {
		return fmt.Errorf("start scp: %w", err)
	}
	if err := server.Listen(ctx); err != nil {
		return fmt.Errorf("start scp: %w", err)
	}
	c.server = server
	c.cfg.Logger.Infof("scp", "listening on %s as %s", c.cfg.Model.LocalAE.Host, c.cfg.Model.LocalAE.AETitle)
	return nil
}

// AbortAll flips the cooperative cancellation flags on every long-running
// operation (spec.md §5 cancellation policy): in-flight move and export
// batches still complete, but no new ones start.
func (c *Control) AbortAll() {
	if c.cfg.AbortRetrieval != nil {
		c.cfg.AbortRetrieval()
	}
	if c.cfg.AbortExport != nil {
		c.cfg.AbortExport()
	}
}

// StopSCP stops accepting new associations, drains in-flight stores, stops
// the ingest pipeline's workers, and flushes the PHI Index Store.
func (c *Control) StopSCP(ctx context.Context) error {
	if c.server != nil {
		if err := c.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("stop scp: %w", err)
		}
	}
	if c.cfg.Ingest != nil {
		c.cfg.Ingest.Stop()
	}
	if c.cfg.Store != nil && c.cfg.Store.Dirty() {
		snapshotPath := filepath.Join(c.cfg.Model.StorageDir, "private", "AnonymizerModel.bin")
		if err := c.cfg.Store.Save(snapshotPath); err != nil {
			return fmt.Errorf("flush phi index: %w", err)
		}
		c.cfg.Store.ClearDirty()
	}
	return nil
}

// HandleFind serves Study-Root C-FIND against the PHI Index Store's
// de-identified tree: this node answers queries about its own archive the
// way an archive SCP does, distinct from internal/retrieval which issues
// C-FIND as an SCU against a peer.
func (c *Control) HandleFind(ctx context.Context, req *scp.FindRequest) *scp.FindResponse {
	wantPatientID, _ := keywordString(req.Query, "PatientID")
	wantStudyUID, _ := keywordString(req.Query, "StudyInstanceUID")

	var results []*dicom.DataSet
	for _, phi := range c.cfg.Store.AllPHI() {
		if wantPatientID != "" && phi.AnonPatientID != wantPatientID {
			continue
		}
		for _, st := range phi.Studies {
			if wantStudyUID != "" && st.AnonStudyUID != wantStudyUID {
				continue
			}
			results = append(results, studyResultDataSet(phi, st))
		}
	}
	return &scp.FindResponse{Results: results, Status: 0x0000}
}

// HandleMove serves Study-Root C-MOVE by re-sending already-archived
// instances to the caller's destination AE. The destination is resolved to
// this project's configured export AE; a generic AE-title directory is out
// of scope (no such collaborator exists in spec.md §6's external
// interfaces beyond the local/query/export triple).
func (c *Control) HandleMove(ctx context.Context, req *scp.MoveRequest) *scp.MoveResponse {
	wantStudyUID, _ := keywordString(req.Query, "StudyInstanceUID")
	if wantStudyUID == "" {
		return &scp.MoveResponse{Status: 0xA900} // Identifier does not match SOP class
	}

	var completed, failed uint16
	for _, phi := range c.cfg.Store.AllPHI() {
		for _, st := range phi.Studies {
			if st.AnonStudyUID != wantStudyUID {
				continue
			}
			completed, failed = c.moveStudyInstances(ctx, req, phi, st)
		}
	}
	status := uint16(0x0000)
	if failed > 0 {
		status = 0xB000 // Sub-operations complete, one or more failures
	}
	return &scp.MoveResponse{NumberOfCompletedSubOps: completed, NumberOfFailedSubOps: failed, Status: status}
}

// moveStudyInstances re-sends every archived instance of st to the move
// client's destination, the way internal/export's sendToSCP does for
// export_patients, but driven off the PHI Index Store's own tree rather
// than a filesystem walk since the study is already fully known here.
func (c *Control) moveStudyInstances(ctx context.Context, req *scp.MoveRequest, phi *phiindex.PHI, st *phiindex.Study) (completed, failed uint16) {
	if c.cfg.NewMoveClient == nil || c.cfg.StorageDir == "" {
		for _, sr := range st.Series {
			failed += uint16(len(sr.Instances))
		}
		return 0, failed
	}

	store := storage.New(c.cfg.StorageDir)
	client := c.cfg.NewMoveClient()
	if err := client.Connect(ctx); err != nil {
		c.cfg.Logger.Errorf("move", "connect to %s: %v", req.Destination, err)
		for _, sr := range st.Series {
			failed += uint16(len(sr.Instances))
		}
		return 0, failed
	}
	defer client.Close(ctx)

	for _, sr := range st.Series {
		for _, inst := range sr.Instances {
			path := store.PathFor(phi.AnonPatientID, st.AnonStudyUID, sr.AnonSeriesUID, inst.AnonSOPInstanceUID)
			ds, err := dicom.ParseFile(path)
			if err != nil {
				failed++
				continue
			}
			sopClassUID, _ := keywordString(ds, "SOPClassUID")
			if err := client.Store(ctx, ds, sopClassUID, inst.AnonSOPInstanceUID); err != nil {
				failed++
				continue
			}
			completed++
		}
	}
	return completed, failed
}

func studyResultDataSet(phi *phiindex.PHI, st *phiindex.Study) *dicom.DataSet {
	ds := dicom.NewDataSet()
	setString(ds, tag.PatientID, vr.LongString, phi.AnonPatientID)
	setString(ds, tag.PatientName, vr.PersonName, phi.AnonPatientID)
	setString(ds, tag.StudyInstanceUID, vr.UniqueIdentifier, st.AnonStudyUID)
	setString(ds, tag.StudyDate, vr.Date, shiftedDate(st))
	setString(ds, tag.AccessionNumber, vr.ShortString, st.AnonAccessionNumber)
	setString(ds, tag.NumberOfStudyRelatedInstances, vr.IntegerString, strconv.Itoa(st.InstanceCount()))
	return ds
}

// shiftedDate applies a study's already-computed anon date delta (spec.md
// §4.B's MD5(phi_patient_id) mod 3652 day offset) to its PHI study date.
func shiftedDate(st *phiindex.Study) string {
	d, err := datetime.ParseDate(st.StudyDate)
	if err != nil {
		return st.StudyDate
	}
	d.Time = d.Time.AddDate(0, 0, st.AnonDateDelta)
	return d.DCM()
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

func keywordString(ds *dicom.DataSet, keyword string) (string, bool) {
	elem, err := ds.GetByKeyword(keyword)
	if err != nil {
		return "", false
	}
	return elem.Value().String(), true
}

// refreshExportCredentials obtains (and caches) an OAuth2 token for the
// export destination, refreshing whenever expiration is under 300s away
// (spec.md §4.H AWS_authenticate, renamed: the identity-pool flow is
// modelled over golang.org/x/oauth2 rather than an AWS SDK, see DESIGN.md).
func (c *Control) refreshExportCredentials(ctx context.Context) (*oauth2.Token, error) {
	c.credMu.Lock()
	defer c.credMu.Unlock()

	if c.token != nil && time.Until(c.token.Expiry) > 300*time.Second {
		return c.token, nil
	}

	if c.oauthCfg == nil {
		c.oauthCfg = &oauth2.Config{
			ClientID: c.cfg.Model.AWSCognito.IdentityPoolID,
			Endpoint: oauth2.Endpoint{
				TokenURL: fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/oauth2/token", c.cfg.Model.AWSCognito.Region),
			},
		}
	}

	tok, err := c.oauthCfg.PasswordCredentialsToken(ctx, c.cfg.Model.AWSCognito.Username, c.cfg.Model.AWSCognito.Password)
	if err != nil {
		return nil, fmt.Errorf("refresh export credentials: %w", err)
	}
	c.token = tok
	return tok, nil
}

// NewGCSClient builds a storage.Client authenticated with the most recently
// refreshed export credentials.
func (c *Control) NewGCSClient(ctx context.Context) (*gcs.Client, error) {
	tok, err := c.refreshExportCredentials(ctx)
	if err != nil {
		return nil, err
	}
	return gcs.NewClient(ctx, option.WithTokenSource(oauth2.StaticTokenSource(tok)))
}

// CreatePHICSV writes the per-study report named in spec.md §6, one row
// per imported study, in the documented column order.
func (c *Control) CreatePHICSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create phi csv: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // G304: operator-provided report path
	if err != nil {
		return fmt.Errorf("create phi csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"ANON_PatientID", "ANON_PatientName", "PHI_PatientID", "PHI_PatientName",
		"DateOffset", "ANON_Accession", "PHI_Accession",
		"ANON_StudyInstanceUID", "PHI_StudyInstanceUID",
		"ANON_StudyDate", "PHI_StudyDate", "NumberOfSeries", "NumberOfInstances",
	}); err != nil {
		return err
	}

	rows := phiCSVRows(c.cfg.Store)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func phiCSVRows(store *phiindex.Store) [][]string {
	var rows [][]string
	for _, phi := range store.AllPHI() {
		for _, st := range phi.Studies {
			anonDate := shiftedDate(st)
			rows = append(rows, []string{
				phi.AnonPatientID, phi.AnonPatientID, phi.PatientID, phi.PatientName,
				strconv.Itoa(st.AnonDateDelta), st.AnonAccessionNumber, st.AccessionNumber,
				st.AnonStudyUID, st.StudyUID,
				anonDate, st.StudyDate,
				strconv.Itoa(len(st.Series)), strconv.Itoa(st.InstanceCount()),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return rows
}
