package phiindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/codeninja55/go-radx/internal/rerr"
)

func mustSet(t *testing.T, ds *dicom.DataSet, tg tag.Tag, v vr.VR, s string) {
	t.Helper()
	val, err := value.NewStringValue(v, []string{s})
	require.NoError(t, err)
	elem, err := element.NewElement(tg, v, val)
	require.NoError(t, err)
	require.NoError(t, ds.Add(elem))
}

func sampleDataset(t *testing.T, patientID, studyUID, seriesUID, sopUID string) *dicom.DataSet {
	t.Helper()
	ds := dicom.NewDataSet()
	mustSet(t, ds, tag.SOPClassUID, vr.UniqueIdentifier, "1.2.840.10008.5.1.4.1.1.2")
	mustSet(t, ds, tag.StudyInstanceUID, vr.UniqueIdentifier, studyUID)
	mustSet(t, ds, tag.SeriesInstanceUID, vr.UniqueIdentifier, seriesUID)
	mustSet(t, ds, tag.SOPInstanceUID, vr.UniqueIdentifier, sopUID)
	mustSet(t, ds, tag.PatientID, vr.LongString, patientID)
	mustSet(t, ds, tag.PatientName, vr.PersonName, "DOE^JOHN")
	mustSet(t, ds, tag.StudyDate, vr.Date, "20200115")
	return ds
}

func TestCapturePHI_AllocatesSequentialAnonPatientIDs(t *testing.T) {
	s := New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)

	ds1 := sampleDataset(t, "X123", "1.2.3.4", "1.2.3.4.1", "1.2.3.4.1.1")
	require.NoError(t, s.CapturePHI("peer-a", ds1))

	anon1, ok := s.GetAnonPatientID("X123")
	require.True(t, ok)
	assert.Equal(t, "RSNA-0001-000001", anon1)

	ds2 := sampleDataset(t, "Y999", "5.6.7.8", "5.6.7.8.1", "5.6.7.8.1.1")
	require.NoError(t, s.CapturePHI("peer-a", ds2))

	anon2, ok := s.GetAnonPatientID("Y999")
	require.True(t, ok)
	assert.Equal(t, "RSNA-0001-000002", anon2)
}

func TestCapturePHI_EmptyPatientIDCollapsesToSentinel(t *testing.T) {
	s := New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	ds := sampleDataset(t, "", "1.1", "1.1.1", "1.1.1.1")
	require.NoError(t, s.CapturePHI("peer-a", ds))

	anon, ok := s.GetAnonPatientID("")
	require.True(t, ok)
	assert.Equal(t, "RSNA-0001-000000", anon)
}

func TestCapturePHI_AlreadyPresentIsIdempotent(t *testing.T) {
	s := New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	ds := sampleDataset(t, "X123", "1.2.3.4", "1.2.3.4.1", "1.2.3.4.1.1")
	require.NoError(t, s.CapturePHI("peer-a", ds))

	_, _, _, before := s.GetTotals()
	err := s.CapturePHI("peer-a", ds)
	require.Error(t, err)
	assert.True(t, rerr.Is(err, rerr.AlreadyPresent))

	_, _, _, after := s.GetTotals()
	assert.Equal(t, before, after)
}

func TestCapturePHI_MissingAttributes(t *testing.T) {
	s := New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	ds := dicom.NewDataSet()
	mustSet(t, ds, tag.SOPClassUID, vr.UniqueIdentifier, "1.2.840.10008.5.1.4.1.1.2")

	err := s.CapturePHI("peer-a", ds)
	require.Error(t, err)
	assert.True(t, rerr.Is(err, rerr.MissingAttributes))
}

func TestGetNextAnonPatientID_CapacityExceeded(t *testing.T) {
	s := New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 1)
	_, err := s.GetNextAnonPatientID("A")
	require.NoError(t, err)
	_, err = s.GetNextAnonPatientID("B")
	require.Error(t, err)
	assert.True(t, rerr.Is(err, rerr.CapacityExceeded))
}

func TestDateDelta_SameForAllStudiesOfAPatient(t *testing.T) {
	d1 := DateDelta("X123")
	d2 := DateDelta("X123")
	assert.Equal(t, d1, d2)
	assert.True(t, d1 >= 0 && d1 < 3652)
}

func TestAssignAnonUIDs_GlobalCounterIsSharedAcrossPatients(t *testing.T) {
	s := New("RSNA-0001", "1.2.826.0.1.3680043.10.474", 0)
	ds1 := sampleDataset(t, "X123", "1.2.3.4", "1.2.3.4.1", "1.2.3.4.1.1")
	require.NoError(t, s.CapturePHI("peer-a", ds1))
	_, anonSeries, anonSOP, _, err := s.AssignAnonUIDs("X123", "1.2.3.4", "1.2.3.4.1", "1.2.3.4.1.1", "")
	require.NoError(t, err)
	assert.NotEqual(t, anonSeries, anonSOP)
}
