package phiindex

import (
	"crypto/md5"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/internal/rerr"
)

// sentinelSuffix is the reserved anon-patient suffix for missing/empty PHI
// patient ids (spec.md invariant 3).
const sentinelSuffix = "000000"

// Store is the PHI Index Store. All exported methods are safe for
// concurrent use; writers take an exclusive lock, readers a shared one
// (spec.md §5 "single-writer, multi-reader discipline").
type Store struct {
	mu sync.RWMutex

	siteID      string
	uidRoot     string
	maxPatients int

	patientPHIToAnon map[string]string
	patientAnonToPHI map[string]string
	uidPHIToAnon     map[string]string
	uidAnonToPHI     map[string]string
	accPHIToAnon     map[string]string
	accAnonToPHI     map[string]string

	nextPatientN int
	nextUIDN     int
	nextAccN     int

	// phiByPHIPatient indexes the aggregate tree by PHI patient id, the
	// natural key to upsert against during capture_phi.
	phiByPHIPatient map[string]*PHI
	// phiByAnonPatient is the reverse index named in spec.md §3
	// ("anon_patient_id → PHI").
	phiByAnonPatient map[string]*PHI

	totalStudies   int
	totalSeries    int
	totalInstances int

	dirty bool
}

// New creates an empty PHI Index Store for the given site/UID root.
// maxPatients enforces the §4.A CAPACITY_EXCEEDED bound; 0 means use the
// spec's default of 1,000,000.
func New(siteID, uidRoot string, maxPatients int) *Store {
	if maxPatients <= 0 {
		maxPatients = 1_000_000
	}
	s := &Store{
		siteID:           siteID,
		uidRoot:          uidRoot,
		maxPatients:      maxPatients,
		patientPHIToAnon: make(map[string]string),
		patientAnonToPHI: make(map[string]string),
		uidPHIToAnon:     make(map[string]string),
		uidAnonToPHI:     make(map[string]string),
		accPHIToAnon:     make(map[string]string),
		accAnonToPHI:     make(map[string]string),
		phiByPHIPatient:  make(map[string]*PHI),
		phiByAnonPatient: make(map[string]*PHI),
	}
	// The sentinel anon patient always exists, even in an empty store, so
	// instances with an empty PHI patient id immediately collapse into it.
	sentinelAnon := s.siteID + "-" + sentinelSuffix
	s.patientPHIToAnon[""] = sentinelAnon
	s.patientAnonToPHI[sentinelAnon] = ""
	s.phiByPHIPatient[""] = &PHI{AnonPatientID: sentinelAnon, Studies: make(map[string]*Study)}
	s.phiByAnonPatient[sentinelAnon] = s.phiByPHIPatient[""]
	return s
}

// SiteID and UIDRoot are read-only after project open (spec.md §5).
func (s *Store) SiteID() string  { return s.siteID }
func (s *Store) UIDRoot() string { return s.uidRoot }

// Dirty reports whether the store has unsaved writes since the last clear.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// ClearDirty is called by the autosave task (spec.md §4.D) after a
// successful serialization.
func (s *Store) ClearDirty() {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
}

// GetAnonPatientID returns the anon patient id for phiID if already
// allocated.
func (s *Store) GetAnonPatientID(phiID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.patientPHIToAnon[phiID]
	return id, ok
}

// GetNextAnonPatientID allocates (or returns the existing) anon patient id
// for phiID.
func (s *Store) GetNextAnonPatientID(phiID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocPatientLocked(phiID)
}

func (s *Store) allocPatientLocked(phiID string) (string, error) {
	if anon, ok := s.patientPHIToAnon[phiID]; ok {
		return anon, nil
	}
	if s.nextPatientN >= s.maxPatients {
		return "", rerr.New(rerr.CapacityExceeded, fmt.Sprintf("patient capacity %d exceeded", s.maxPatients))
	}
	s.nextPatientN++
	anon := fmt.Sprintf("%s-%06d", s.siteID, s.nextPatientN)
	s.patientPHIToAnon[phiID] = anon
	s.patientAnonToPHI[anon] = phiID
	s.dirty = true
	return anon, nil
}

// GetNextAnonUID allocates (or returns the existing) anon UID for phiUID.
func (s *Store) GetNextAnonUID(phiUID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocUIDLocked(phiUID)
}

func (s *Store) allocUIDLocked(phiUID string) (string, error) {
	if anon, ok := s.uidPHIToAnon[phiUID]; ok {
		return anon, nil
	}
	s.nextUIDN++
	anon := fmt.Sprintf("%s.%s.%d", s.uidRoot, s.siteID, s.nextUIDN)
	s.uidPHIToAnon[phiUID] = anon
	s.uidAnonToPHI[anon] = phiUID
	s.dirty = true
	return anon, nil
}

// GetNextAnonAccNo allocates (or returns the existing) anon accession
// number for phiAcc.
func (s *Store) GetNextAnonAccNo(phiAcc string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocAccLocked(phiAcc)
}

func (s *Store) allocAccLocked(phiAcc string) (string, error) {
	if anon, ok := s.accPHIToAnon[phiAcc]; ok {
		return anon, nil
	}
	s.nextAccN++
	anon := fmt.Sprintf("%d", s.nextAccN)
	s.accPHIToAnon[phiAcc] = anon
	s.accAnonToPHI[anon] = phiAcc
	s.dirty = true
	return anon, nil
}

// DateDelta returns the anon_date_delta for a PHI patient id: invariant 4,
// MD5(phi_patient_id) interpreted as a big-endian integer, mod 3652.
func DateDelta(phiPatientID string) int {
	sum := md5.Sum([]byte(phiPatientID))
	n := new(big.Int).SetBytes(sum[:])
	mod := big.NewInt(3652)
	return int(new(big.Int).Mod(n, mod).Int64())
}

// requiredCaptureTags are the four attributes §6 requires for every
// ingested instance.
var requiredCaptureTags = []struct {
	t    tag.Tag
	name string
}{
	{tag.SOPClassUID, "SOPClassUID"},
	{tag.StudyInstanceUID, "StudyInstanceUID"},
	{tag.SeriesInstanceUID, "SeriesInstanceUID"},
	{tag.SOPInstanceUID, "SOPInstanceUID"},
}

func elementString(ds *dicom.DataSet, t tag.Tag) (string, bool) {
	elem, err := ds.Get(t)
	if err != nil {
		return "", false
	}
	return elem.Value().String(), true
}

// CapturePHI walks ds once and upserts the PHI → Study → Series → Instance
// path (spec.md §4.A). Returns a *rerr.Error of kind ALREADY_PRESENT if the
// instance UID is already present (idempotence, a no-op), or
// MISSING_ATTRIBUTES if a required attribute is absent.
func (s *Store) CapturePHI(source string, ds *dicom.DataSet) error {
	var missing []string
	vals := make(map[tag.Tag]string, len(requiredCaptureTags))
	for _, rt := range requiredCaptureTags {
		v, ok := elementString(ds, rt.t)
		if !ok {
			missing = append(missing, rt.name)
			continue
		}
		vals[rt.t] = v
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return rerr.New(rerr.MissingAttributes, fmt.Sprintf("missing required attributes: %v", missing))
	}

	patientID, _ := elementString(ds, tag.PatientID)
	patientName, _ := elementString(ds, tag.PatientName)
	sex, _ := elementString(ds, tag.PatientSex)
	dob, _ := elementString(ds, tag.PatientBirthDate)
	ethnicGroup, _ := elementString(ds, tag.EthnicGroup)
	studyUID := vals[tag.StudyInstanceUID]
	seriesUID := vals[tag.SeriesInstanceUID]
	sopUID := vals[tag.SOPInstanceUID]
	studyDate, _ := elementString(ds, tag.StudyDate)
	accession, _ := elementString(ds, tag.AccessionNumber)
	studyDesc, _ := elementString(ds, tag.StudyDescription)
	seriesDesc, _ := elementString(ds, tag.SeriesDescription)
	modality, _ := elementString(ds, tag.Modality)
	var targetCount int
	if v, ok := elementString(ds, tag.NumberOfStudyRelatedInstances); ok {
		fmt.Sscanf(v, "%d", &targetCount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	phi, ok := s.phiByPHIPatient[patientID]
	if !ok {
		anon, err := s.allocPatientLocked(patientID)
		if err != nil {
			return err
		}
		phi = &PHI{
			PatientName:   patientName,
			PatientID:     patientID,
			AnonPatientID: anon,
			Sex:           sex,
			DOB:           dob,
			EthnicGroup:   ethnicGroup,
			Studies:       make(map[string]*Study),
		}
		s.phiByPHIPatient[patientID] = phi
		s.phiByAnonPatient[anon] = phi
	}

	study, ok := phi.Studies[studyUID]
	if !ok {
		study = &Study{
			Source:              source,
			StudyUID:            studyUID,
			StudyDate:           studyDate,
			AnonDateDelta:       DateDelta(patientID),
			AccessionNumber:     accession,
			StudyDesc:           studyDesc,
			TargetInstanceCount: targetCount,
			Series:              make(map[string]*Series),
		}
		phi.Studies[studyUID] = study
		s.totalStudies++
		s.dirty = true
	}

	series, ok := study.Series[seriesUID]
	if !ok {
		series = &Series{
			SeriesUID:  seriesUID,
			SeriesDesc: seriesDesc,
			Modality:   modality,
			Instances:  make(map[string]*Instance),
		}
		study.Series[seriesUID] = series
		s.totalSeries++
		s.dirty = true
	}

	if _, exists := series.Instances[sopUID]; exists {
		return rerr.New(rerr.AlreadyPresent, "instance already captured")
	}
	series.Instances[sopUID] = &Instance{SOPInstanceUID: sopUID}
	s.totalInstances++
	s.dirty = true
	return nil
}

// AssignAnonUIDs allocates anon study/series/instance UIDs and an anon
// accession number for a previously-captured instance, recording them on
// the tree. Called by the anonymizer engine after capture_phi; it takes the
// writer lock itself, separately from CapturePHI (spec.md §4.B step 2).
func (s *Store) AssignAnonUIDs(patientID, studyUID, seriesUID, sopUID, accession string) (anonStudyUID, anonSeriesUID, anonSOPUID, anonAccession string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anonStudyUID, err = s.allocUIDLocked(studyUID)
	if err != nil {
		return
	}
	anonSeriesUID, err = s.allocUIDLocked(seriesUID)
	if err != nil {
		return
	}
	anonSOPUID, err = s.allocUIDLocked(sopUID)
	if err != nil {
		return
	}
	anonAccession, err = s.allocAccLocked(accession)
	if err != nil {
		return
	}

	phi, ok := s.phiByPHIPatient[patientID]
	if !ok {
		return
	}
	if study, ok := phi.Studies[studyUID]; ok {
		study.AnonStudyUID = anonStudyUID
		study.AnonAccessionNumber = anonAccession
		if series, ok := study.Series[seriesUID]; ok {
			series.AnonSeriesUID = anonSeriesUID
			if inst, ok := series.Instances[sopUID]; ok {
				inst.AnonSOPInstanceUID = anonSOPUID
			}
		}
	}
	s.dirty = true
	return
}

// AnonPatientID returns the resolved PHI tree entry's anon patient id, for
// callers that only have the PHI patient id.
func (s *Store) AnonPatientIDFor(phiPatientID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.patientPHIToAnon[phiPatientID]
	return id, ok
}

// PHIForAnonPatient returns the PHI tree root for an anon patient id.
func (s *Store) PHIForAnonPatient(anonPatientID string) (*PHI, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	phi, ok := s.phiByAnonPatient[anonPatientID]
	return phi, ok
}

// GetTotals returns the four aggregate counts (spec.md invariant 5), O(1)
// via maintained counters.
func (s *Store) GetTotals() (patients, studies, series, instances int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Exclude the always-present sentinel patient from the visible count
	// only if it was never actually used; otherwise it counts like any
	// other patient that happens to have id "".
	return len(s.phiByAnonPatient), s.totalStudies, s.totalSeries, s.totalInstances
}

// AllPHI returns every patient root in the tree, for reporting callers such
// as create_phi_csv that must walk the whole tree rather than look up one
// patient.
func (s *Store) AllPHI() []*PHI {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*PHI, 0, len(s.phiByAnonPatient))
	for _, phi := range s.phiByAnonPatient {
		out = append(out, phi)
	}
	return out
}

// StudyImported reports whether ptid's study is already known to the tree.
func (s *Store) StudyImported(ptid, studyUID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	phi, ok := s.phiByAnonPatient[ptid]
	if !ok {
		return false
	}
	for _, st := range phi.Studies {
		if st.StudyUID == studyUID || st.AnonStudyUID == studyUID {
			return true
		}
	}
	return false
}

// SeriesComplete reports whether the named series has reached target
// instances.
func (s *Store) SeriesComplete(ptid, studyUID, seriesUID string, target int) bool {
	return s.GetStoredInstanceCount(ptid, studyUID, seriesUID) >= target
}

// GetStoredInstanceCount counts stored instances, filtered to a study
// and/or series when non-empty (used by retrieval/export reconciliation,
// spec.md §4.F/§4.G).
func (s *Store) GetStoredInstanceCount(ptid, studyUID, seriesUID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	phi, ok := s.phiByAnonPatient[ptid]
	if !ok {
		return 0
	}
	n := 0
	for _, st := range phi.Studies {
		if studyUID != "" && st.StudyUID != studyUID && st.AnonStudyUID != studyUID {
			continue
		}
		for _, sr := range st.Series {
			if seriesUID != "" && sr.SeriesUID != seriesUID && sr.AnonSeriesUID != seriesUID {
				continue
			}
			n += sr.InstanceCount()
		}
	}
	return n
}

// GetPendingInstanceCount is target minus stored, floored at zero.
func (s *Store) GetPendingInstanceCount(ptid, studyUID string, target int) int {
	stored := s.GetStoredInstanceCount(ptid, studyUID, "")
	if target < stored {
		return 0
	}
	return target - stored
}

// StoredInstanceUIDs returns the PHI-side SOP instance UIDs stored for a
// study, used by the retrieval orchestrator to diff against what a peer's
// C-FIND reported (spec.md §4.F step 4, invariant 5).
func (s *Store) StoredInstanceUIDs(ptid, studyUID string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]struct{})
	phi, ok := s.phiByAnonPatient[ptid]
	if !ok {
		return out
	}
	for _, st := range phi.Studies {
		if st.StudyUID != studyUID && st.AnonStudyUID != studyUID {
			continue
		}
		for _, sr := range st.Series {
			for uidStr := range sr.Instances {
				out[uidStr] = struct{}{}
			}
		}
	}
	return out
}
