// Package phiindex implements the PHI Index Store (spec.md §4.A): the
// bijective lookup tables between PHI and anonymized identifiers, and the
// aggregate PHI tree (patients → studies → series → instances) those
// lookups are derived from.
//
// The store is the single piece of shared mutable state in the anonymizer
// core (spec.md §5) and is guarded by a single writer/multi-reader lock.
package phiindex

// Instance tracks only membership and is not otherwise recorded (spec.md §3).
type Instance struct {
	SOPInstanceUID     string
	AnonSOPInstanceUID string
}

// Series is one acquisition run within a Study.
type Series struct {
	SeriesUID     string
	AnonSeriesUID string
	SeriesDesc    string
	Modality      string
	Instances     map[string]*Instance // keyed by PHI SOPInstanceUID
}

// InstanceCount returns the number of instances captured for this series.
func (s *Series) InstanceCount() int { return len(s.Instances) }

// Study is one imaging exam.
type Study struct {
	Source              string
	StudyUID             string
	AnonStudyUID         string
	StudyDate            string
	AnonDateDelta        int
	AccessionNumber      string
	AnonAccessionNumber  string
	StudyDesc            string
	TargetInstanceCount  int
	Series               map[string]*Series // keyed by PHI SeriesUID
}

// InstanceCount sums instances across every series of the study.
func (st *Study) InstanceCount() int {
	n := 0
	for _, s := range st.Series {
		n += s.InstanceCount()
	}
	return n
}

// PHI is the per-patient root of the aggregate tree (spec.md §3).
type PHI struct {
	PatientName   string
	PatientID     string
	AnonPatientID string
	Sex           string
	DOB           string
	EthnicGroup   string
	Studies       map[string]*Study // keyed by PHI StudyUID
}
