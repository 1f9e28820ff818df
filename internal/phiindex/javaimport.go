package phiindex

import (
	"strconv"
	"strings"
)

// JavaPhiRow is one already-parsed row of a prior Java-installation index
// export (spec.md §6 "Java index import"): the same column set as the PHI
// CSV (see control.CreatePHICSV), minus the two trailing counts. Reading
// the source Excel workbook is an external collaborator concern (see
// DESIGN.md); rows arrive here already split into fields.
type JavaPhiRow struct {
	AnonPatientID   string
	AnonPatientName string
	PHIPatientID    string
	PHIPatientName  string
	DateOffset      int
	AnonAccession   string
	PHIAccession    string
	AnonStudyUID    string
	PHIStudyUID     string
	AnonStudyDate   string
	PHIStudyDate    string
}

// ProcessJavaPHIStudies bulk-imports a prior site's index, seeding all
// three lookup tables with the pre-existing mappings before any counter
// allocation (spec.md §4.A). Per the Open Question resolved in
// SPEC_FULL.md §12.2, every counter is advanced strictly past the largest
// imported N in its own table, independently of the others.
func (s *Store) ProcessJavaPHIStudies(rows []JavaPhiRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range rows {
		s.patientPHIToAnon[row.PHIPatientID] = row.AnonPatientID
		s.patientAnonToPHI[row.AnonPatientID] = row.PHIPatientID
		if n, ok := trailingN(row.AnonPatientID); ok && n > s.nextPatientN {
			s.nextPatientN = n
		}

		if row.PHIStudyUID != "" {
			s.uidPHIToAnon[row.PHIStudyUID] = row.AnonStudyUID
			s.uidAnonToPHI[row.AnonStudyUID] = row.PHIStudyUID
			if n, ok := trailingN(row.AnonStudyUID); ok && n > s.nextUIDN {
				s.nextUIDN = n
			}
		}

		if row.PHIAccession != "" {
			s.accPHIToAnon[row.PHIAccession] = row.AnonAccession
			s.accAnonToPHI[row.AnonAccession] = row.PHIAccession
			if n, err := strconv.Atoi(row.AnonAccession); err == nil && n > s.nextAccN {
				s.nextAccN = n
			}
		}

		phi, ok := s.phiByPHIPatient[row.PHIPatientID]
		if !ok {
			phi = &PHI{
				PatientName:   row.PHIPatientName,
				PatientID:     row.PHIPatientID,
				AnonPatientID: row.AnonPatientID,
				Studies:       make(map[string]*Study),
			}
			s.phiByPHIPatient[row.PHIPatientID] = phi
			s.phiByAnonPatient[row.AnonPatientID] = phi
		}
		if row.PHIStudyUID != "" {
			if _, exists := phi.Studies[row.PHIStudyUID]; !exists {
				phi.Studies[row.PHIStudyUID] = &Study{
					StudyUID:            row.PHIStudyUID,
					AnonStudyUID:        row.AnonStudyUID,
					StudyDate:           row.PHIStudyDate,
					AnonDateDelta:       row.DateOffset,
					AccessionNumber:     row.PHIAccession,
					AnonAccessionNumber: row.AnonAccession,
					Series:              make(map[string]*Series),
				}
				s.totalStudies++
			}
		}
	}
	s.dirty = true
	return nil
}

// trailingN extracts the trailing decimal counter from an anon id of the
// form "{prefix}-{N}" or "{prefix}.{N}", the shape produced by both the
// patient and UID allocators.
func trailingN(anonID string) (int, bool) {
	idx := strings.LastIndexAny(anonID, ".-")
	if idx < 0 || idx == len(anonID)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(anonID[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
