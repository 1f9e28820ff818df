package control

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/codeninja55/go-radx/dimse/scp"
	"github.com/codeninja55/go-radx/internal/anonengine"
	"github.com/codeninja55/go-radx/internal/phiindex"
	"github.com/codeninja55/go-radx/internal/storage"
)

func mustAdd(t *testing.T, ds *dicom.DataSet, tg tag.Tag, v vr.VR, s string) {
	t.Helper()
	val, err := value.NewStringValue(v, []string{s})
	require.NoError(t, err)
	elem, err := element.NewElement(tg, v, val)
	require.NoError(t, err)
	require.NoError(t, ds.Add(elem))
}

func sampleDataset(t *testing.T) *dicom.DataSet {
	t.Helper()
	ds := dicom.NewDataSet()
	mustAdd(t, ds, tag.SOPClassUID, vr.UniqueIdentifier, "1.2.840.10008.5.1.4.1.1.2")
	mustAdd(t, ds, tag.StudyInstanceUID, vr.UniqueIdentifier, "1.2.3.4")
	mustAdd(t, ds, tag.SeriesInstanceUID, vr.UniqueIdentifier, "1.2.3.4.1")
	mustAdd(t, ds, tag.SOPInstanceUID, vr.UniqueIdentifier, "1.2.3.4.1.1")
	mustAdd(t, ds, tag.PatientID, vr.LongString, "X123")
	mustAdd(t, ds, tag.PatientName, vr.PersonName, "DOE^JOHN")
	mustAdd(t, ds, tag.StudyDate, vr.Date, "20200115")
	mustAdd(t, ds, tag.AccessionNumber, vr.ShortString, "ACC001")
	return ds
}

func newPopulatedStore(t *testing.T, storageDir string) *phiindex.Store {
	t.Helper()
	store := phiindex.New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	st := storage.New(storageDir)
	script := anonengine.NewScript()
	script.Add(tag.PatientName, anonengine.OpRemove)
	script.Add(tag.PatientID, anonengine.OpPtid)
	script.Add(tag.AccessionNumber, anonengine.OpAcc)
	script.Add(tag.StudyDate, anonengine.OpHashDate)
	script.Keep(tag.SOPClassUID)

	engine := anonengine.New(anonengine.Config{
		Store:                 store,
		Script:                script,
		Storage:               st,
		AllowedStorageClasses: map[string]bool{"1.2.840.10008.5.1.4.1.1.2": true},
		ProjectName:           "TESTPROJECT",
		SiteID:                "RSNA-0001",
	})

	_, err := engine.Anonymize("peer-a", nil, sampleDataset(t))
	require.NoError(t, err)
	return store
}

func TestHandleFind_ReturnsMatchingStudyAsDeidentified(t *testing.T) {
	store := newPopulatedStore(t, t.TempDir())
	c := New(Config{Model: nil, Store: store})

	query := dicom.NewDataSet()
	mustAdd(t, query, tag.PatientID, vr.LongString, "RSNA-0001-000001")

	resp := c.HandleFind(nil, &scp.FindRequest{Query: query})
	require.Len(t, resp.Results, 1)

	elem, err := resp.Results[0].Get(tag.PatientID)
	require.NoError(t, err)
	assert.Equal(t, "RSNA-0001-000001", elem.Value().String())
}

func TestHandleFind_NoMatchReturnsEmpty(t *testing.T) {
	store := newPopulatedStore(t, t.TempDir())
	c := New(Config{Store: store})

	query := dicom.NewDataSet()
	mustAdd(t, query, tag.PatientID, vr.LongString, "no-such-patient")

	resp := c.HandleFind(nil, &scp.FindRequest{Query: query})
	assert.Empty(t, resp.Results)
}

func TestCreatePHICSV_WritesOneRowPerStudy(t *testing.T) {
	store := newPopulatedStore(t, t.TempDir())
	c := New(Config{Store: store})

	path := filepath.Join(t.TempDir(), "phi_export", "report.csv")
	require.NoError(t, c.CreatePHICSV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2) // header + one study row
	assert.Contains(t, lines[0], "ANON_PatientID")
	assert.Contains(t, lines[1], "RSNA-0001-000001")
	assert.Contains(t, lines[1], "X123")
}

func TestAbortAll_CallsBothConfiguredAborters(t *testing.T) {
	var retrievalCalled, exportCalled bool
	c := New(Config{
		AbortRetrieval: func() { retrievalCalled = true },
		AbortExport:    func() { exportCalled = true },
	})

	c.AbortAll()
	assert.True(t, retrievalCalled)
	assert.True(t, exportCalled)
}

