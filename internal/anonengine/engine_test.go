package anonengine

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/codeninja55/go-radx/internal/phiindex"
	"github.com/codeninja55/go-radx/internal/rerr"
)

// fakeStorage is an in-memory Storage for exercising Anonymize without
// internal/storage.
type fakeStorage struct {
	mu          sync.Mutex
	written     map[string]*dicom.DataSet
	quarantined []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{written: make(map[string]*dicom.DataSet)}
}

func (f *fakeStorage) PathFor(anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID string) string {
	return fmt.Sprintf("%s/%s/%s/%s.dcm", anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID)
}

func (f *fakeStorage) Write(ds *dicom.DataSet, anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	path := f.PathFor(anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID)
	f.written[path] = ds
	return path, nil
}

func (f *fakeStorage) Quarantine(category string, data []byte, origName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quarantined = append(f.quarantined, category)
	return nil
}

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
	mustAdd(t, ds, tag.PatientAge, vr.AgeString, "091Y")
	mustAdd(t, ds, tag.AccessionNumber, vr.ShortString, "ACC001")
	return ds
}

func basicScript() *Script {
	s := NewScript()
	s.Add(tag.PatientName, OpRemove)
	s.Add(tag.PatientID, OpPtid)
	s.Add(tag.AccessionNumber, OpAcc)
	s.Add(tag.StudyDate, OpHashDate)
	s.Add(tag.PatientAge, OpRound, "5")
	s.Keep(tag.SOPClassUID)
	return s
}

func newTestEngine(store *phiindex.Store, storage Storage) *Engine {
	return New(Config{
		Store:                 store,
		Script:                basicScript(),
		Storage:               storage,
		AllowedStorageClasses: map[string]bool{"1.2.840.10008.5.1.4.1.1.2": true},
		ProjectName:           "TESTPROJECT",
		SiteID:                "RSNA-0001",
	})
}

func TestAnonymize_RewritesPHIAndWritesToStorage(t *testing.T) {
	store := phiindex.New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	storage := newFakeStorage()
	engine := newTestEngine(store, storage)

	ds := sampleDataset(t)
	path, err := engine.Anonymize("peer-a", nil, ds)
	require.NoError(t, err)
	assert.Contains(t, path, "RSNA-0001-000001")

	written := storage.written[path]
	require.NotNil(t, written)

	elem, err := written.Get(tag.PatientID)
	require.NoError(t, err)
	assert.Equal(t, "RSNA-0001-000001", elem.Value().String())

	_, err = written.Get(tag.PatientName)
	assert.Error(t, err, "PatientName should have been removed")

	removed, err := written.Get(tag.PatientIdentityRemoved)
	require.NoError(t, err)
	assert.Equal(t, "YES", removed.Value().String())
}

func TestAnonymize_RejectsDisallowedStorageClass(t *testing.T) {
	store := phiindex.New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	storage := newFakeStorage()
	engine := New(Config{
		Store:                 store,
		Script:                basicScript(),
		Storage:               storage,
		AllowedStorageClasses: map[string]bool{"1.2.840.10008.5.1.4.1.1.7": true},
		ProjectName:           "TESTPROJECT",
		SiteID:                "RSNA-0001",
	})

	ds := sampleDataset(t)
	_, err := engine.Anonymize("peer-a", []byte("raw"), ds)
	require.Error(t, err)
	assert.True(t, rerr.Is(err, rerr.InvalidStorageClass))
	assert.Equal(t, []string{"Invalid_Storage_Class"}, storage.quarantined)
}

func TestAnonymize_RoundsAgeHalfUp(t *testing.T) {
	store := phiindex.New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	storage := newFakeStorage()
	engine := newTestEngine(store, storage)

	ds := sampleDataset(t)
	path, err := engine.Anonymize("peer-a", nil, ds)
	require.NoError(t, err)

	written := storage.written[path]
	ageElem, err := written.Get(tag.PatientAge)
	require.NoError(t, err)
	// 091Y rounds half-up to the nearest multiple of 5 -> 090Y.
	assert.Equal(t, "090Y", ageElem.Value().String())
}

func TestAnonymize_AlreadyPresentReturnsExistingPath(t *testing.T) {
	store := phiindex.New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	storage := newFakeStorage()
	engine := newTestEngine(store, storage)

	ds1 := sampleDataset(t)
	path1, err := engine.Anonymize("peer-a", nil, ds1)
	require.NoError(t, err)

	ds2 := sampleDataset(t)
	path2, err := engine.Anonymize("peer-a", nil, ds2)
	require.NoError(t, err)
	assert.Equal(t, path1, path2)
	assert.Len(t, storage.written, 1)
}
