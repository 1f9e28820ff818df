package anonengine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/datetime"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/codeninja55/go-radx/internal/phiindex"
	"github.com/codeninja55/go-radx/internal/rerr"
	"github.com/codeninja55/go-radx/internal/rlog"
)

// Storage is the subset of the storage layer (internal/storage) the
// engine needs: writing an anonymized instance to its content-addressed
// path and quarantining source bytes on failure (spec.md §4.C).
type Storage interface {
	Write(ds *dicom.DataSet, anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID string) (string, error)
	Quarantine(category string, data []byte, origName string) error
	PathFor(anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID string) string
}

// Options selects the partial de-identification options named in
// spec.md §4.B step 4. Each enabled option appends its DICOM PS3.15 code
// to DeIdentificationMethodCodeSequence, in numeric order
// (SPEC_FULL.md §12.3).
type Options struct {
	RetainLongitudinalTemporal bool // 113107
	RetainPatientCharacteristics bool // 113108
	RetainDeviceIdentity        bool // 113109
}

// Config configures a new Engine.
type Config struct {
	Store                 *phiindex.Store
	Script                *Script
	Storage               Storage
	AllowedStorageClasses map[string]bool
	ProjectName           string
	SiteID                string
	Options               Options
	Logger                *rlog.Logger
}

// Engine executes anonymize(source, dataset) per spec.md §4.B.
type Engine struct {
	cfg Config
}

// New builds an Engine. cfg.Logger may be nil, in which case a
// discard-level logger is used.
func New(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = rlog.New("anonymizer", "error")
	}
	return &Engine{cfg: cfg}
}

func elemString(ds *dicom.DataSet, t tag.Tag) (string, bool) {
	e, err := ds.Get(t)
	if err != nil {
		return "", false
	}
	return e.Value().String(), true
}

// Anonymize executes the full rewrite contract of spec.md §4.B. source
// identifies the ingesting peer (for the PHI tree's Source field); raw is
// the original wire bytes, used only for quarantine. Returns the storage
// path of the anonymized instance.
func (e *Engine) Anonymize(source string, raw []byte, ds *dicom.DataSet) (string, error) {
	sopClassUID, ok := elemString(ds, tag.SOPClassUID)
	if !ok {
		return e.quarantine(rerr.MissingAttributes, "missing SOPClassUID", raw)
	}
	if len(e.cfg.AllowedStorageClasses) > 0 && !e.cfg.AllowedStorageClasses[sopClassUID] {
		return e.quarantine(rerr.InvalidStorageClass, fmt.Sprintf("storage class %s not allowed", sopClassUID), raw)
	}

	for _, t := range []tag.Tag{tag.StudyInstanceUID, tag.SeriesInstanceUID, tag.SOPInstanceUID} {
		if _, ok := elemString(ds, t); !ok {
			return e.quarantine(rerr.MissingAttributes, fmt.Sprintf("missing %s", t), raw)
		}
	}

	patientID, _ := elemString(ds, tag.PatientID)
	studyUID, _ := elemString(ds, tag.StudyInstanceUID)
	seriesUID, _ := elemString(ds, tag.SeriesInstanceUID)
	sopUID, _ := elemString(ds, tag.SOPInstanceUID)
	accession, _ := elemString(ds, tag.AccessionNumber)

	// Step 2: capture_phi, then allocate anon identifiers. Each store call
	// takes A's writer lock on its own; the two steps are not one critical
	// section.
	err := e.cfg.Store.CapturePHI(source, ds)
	if err != nil {
		if rerr.Is(err, rerr.AlreadyPresent) {
			anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID, _, allocErr := e.allocateAll(patientID, studyUID, seriesUID, sopUID, accession)
			if allocErr != nil {
				return e.quarantine(rerr.CapturePHIError, allocErr.Error(), raw)
			}
			return e.cfg.Storage.PathFor(anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID), nil
		}
		if rerr.Is(err, rerr.MissingAttributes) {
			return e.quarantine(rerr.MissingAttributes, err.Error(), raw)
		}
		return e.quarantine(rerr.CapturePHIError, err.Error(), raw)
	}

	anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID, anonAccession, err := e.allocateAll(patientID, studyUID, seriesUID, sopUID, accession)
	if err != nil {
		return e.quarantine(rerr.CapturePHIError, err.Error(), raw)
	}

	dateDelta := phiindex.DateDelta(patientID)

	// Step 3: single-pass rewrite.
	rewriteErr := ds.WalkModify(func(elem *element.Element) (bool, error) {
		t := elem.Tag()
		if entry, hasScript := e.cfg.Script.Entries[t]; hasScript {
			return e.applyOperator(ds, elem, entry, anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID, anonAccession, dateDelta)
		}
		if e.cfg.Script.AlwaysKeep[t] {
			return false, nil
		}
		if shouldDeleteByGroup(t) {
			return false, dicom.ErrRemoveElement
		}
		return false, nil
	})
	if rewriteErr != nil {
		return e.quarantine(rerr.StorageError, rewriteErr.Error(), raw)
	}

	// Step 4/5: de-identification markers and private block.
	if err := e.stampDeidentification(ds); err != nil {
		return e.quarantine(rerr.StorageError, err.Error(), raw)
	}

	path, err := e.cfg.Storage.Write(ds, anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID)
	if err != nil {
		return e.quarantine(rerr.StorageError, err.Error(), raw)
	}
	return path, nil
}

func (e *Engine) allocateAll(patientID, studyUID, seriesUID, sopUID, accession string) (anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID, anonAccession string, err error) {
	anonPatientID, err = e.cfg.Store.GetNextAnonPatientID(patientID)
	if err != nil {
		return
	}
	anonStudyUID, anonSeriesUID, anonSOPUID, anonAccession, err = e.cfg.Store.AssignAnonUIDs(patientID, studyUID, seriesUID, sopUID, accession)
	return
}

func (e *Engine) quarantine(kind rerr.Kind, msg string, raw []byte) (string, error) {
	category := rerr.QuarantineCategories[kind]
	if err := e.cfg.Storage.Quarantine(category, raw, ""); err != nil {
		e.cfg.Logger.Errorf("quarantine", "failed to quarantine under %s: %v (original error: %s)", category, err, msg)
	}
	return "", rerr.New(kind, msg)
}

// shouldDeleteByGroup implements step 3's fallback rule: curves/overlays,
// private (odd) groups, and the [0x0032, 0x4008] range are dropped when
// not otherwise named by the script or the keep set.
func shouldDeleteByGroup(t tag.Tag) bool {
	g := t.Group
	if (g >= 0x5000 && g <= 0x5FFF) || (g >= 0x6000 && g <= 0x6FFF) {
		return true
	}
	if g%2 == 1 {
		return true
	}
	if g >= 0x0032 && g <= 0x4008 {
		return true
	}
	return false
}

func (e *Engine) applyOperator(ds *dicom.DataSet, elem *element.Element, entry ScriptEntry, anonPatientID, anonStudyUID, anonSeriesUID, anonSOPUID, anonAccession string, dateDelta int) (bool, error) {
	switch entry.Operator {
	case OpKeep:
		return false, nil
	case OpRemove:
		return false, dicom.ErrRemoveElement
	case OpEmpty:
		return setStringValue(elem, "")
	case OpPtid:
		return setStringValue(elem, anonPatientID)
	case OpAcc:
		return setStringValue(elem, anonAccession)
	case OpUID:
		switch elem.Tag() {
		case tag.StudyInstanceUID:
			return setStringValue(elem, anonStudyUID)
		case tag.SeriesInstanceUID:
			return setStringValue(elem, anonSeriesUID)
		case tag.SOPInstanceUID:
			return setStringValue(elem, anonSOPUID)
		}
		anonUID, err := e.cfg.Store.GetNextAnonUID(elem.Value().String())
		if err != nil {
			return false, err
		}
		return setStringValue(elem, anonUID)
	case OpHashDate:
		return applyHashDate(elem, dateDelta)
	case OpRound:
		return applyRound(elem, entry.Args)
	default:
		return false, fmt.Errorf("unknown operator %s for tag %s", entry.Operator, elem.Tag())
	}
}

func setStringValue(elem *element.Element, s string) (bool, error) {
	val, err := value.NewStringValue(elem.VR(), []string{s})
	if err != nil {
		return false, err
	}
	if err := elem.SetValue(val); err != nil {
		return false, err
	}
	return true, nil
}

// applyHashDate shifts a Date-valued element by dateDelta days, leaving
// any embedded time component untouched (spec.md §4.B @hashdate).
func applyHashDate(elem *element.Element, dateDelta int) (bool, error) {
	orig := elem.Value().String()
	if strings.TrimSpace(orig) == "" {
		return false, nil
	}
	d, err := datetime.ParseDate(orig)
	if err != nil {
		return false, fmt.Errorf("hashdate: parse %q: %w", orig, err)
	}
	shifted := d.Time.AddDate(0, 0, dateDelta)
	return setStringValue(elem, shifted.Format("20060102"))
}

// applyRound rounds a DICOM Age String to the nearest multiple of width,
// half-up (Open Question 1, resolved in SPEC_FULL.md §12.1), preserving
// the unit suffix and clamping to the valid 000-999 range.
func applyRound(elem *element.Element, args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("round: expected one width argument")
	}
	width, err := strconv.Atoi(args[0])
	if err != nil || width <= 0 {
		return false, fmt.Errorf("round: invalid width %q", args[0])
	}
	orig := elem.Value().String()
	if strings.TrimSpace(orig) == "" {
		return false, nil
	}
	age, err := datetime.ParseAge(orig)
	if err != nil {
		return false, fmt.Errorf("round: parse %q: %w", orig, err)
	}
	rounded := ((age.Value + width/2) / width) * width
	if rounded > 999 {
		rounded = 999
	}
	if rounded < 0 {
		rounded = 0
	}
	return setStringValue(elem, fmt.Sprintf("%03d%s", rounded, age.Unit))
}

// deidentCode pairs a PS3.15 code with the condition under which it is
// appended (spec.md §4.B step 4; ordering resolved in SPEC_FULL.md §12.3).
type deidentCode struct {
	code    string
	include bool
}

func (e *Engine) stampDeidentification(ds *dicom.DataSet) error {
	if _, err := setElem(ds, tag.PatientIdentityRemoved, vr.CodeString, "YES"); err != nil {
		return err
	}
	if _, err := setElem(ds, tag.DeIdentificationMethod, vr.LongString, "RSNA DICOM ANONYMIZER"); err != nil {
		return err
	}

	codes := []deidentCode{
		{"113100", true},
		{"113107", e.cfg.Options.RetainLongitudinalTemporal},
		{"113108", e.cfg.Options.RetainPatientCharacteristics},
		{"113109", e.cfg.Options.RetainDeviceIdentity},
	}
	var active []string
	for _, c := range codes {
		if c.include {
			active = append(active, c.code)
		}
	}
	val, err := value.NewStringValue(vr.CodeString, active)
	if err != nil {
		return err
	}
	elem, err := element.NewElement(tag.DeIdentificationMethodCodeSequence, vr.CodeString, val)
	if err != nil {
		return err
	}
	if err := ds.Add(elem); err != nil {
		return err
	}

	// Private block: creator "RSNA" in group 0x0013 with ProjectName and
	// SiteID (spec.md §4.B step 5). The dataset model used here has no
	// dynamic private-block reservation primitive, so the block's two
	// data elements are addressed directly (see DESIGN.md).
	if _, err := setElem(ds, tag.New(0x0013, 0x0010), vr.LongString, "RSNA"); err != nil {
		return err
	}
	if _, err := setElem(ds, tag.New(0x0013, 0x1001), vr.LongString, e.cfg.ProjectName); err != nil {
		return err
	}
	if _, err := setElem(ds, tag.New(0x0013, 0x1002), vr.LongString, e.cfg.SiteID); err != nil {
		return err
	}
	return nil
}

func setElem(ds *dicom.DataSet, t tag.Tag, v vr.VR, s string) (*element.Element, error) {
	val, err := value.NewStringValue(v, []string{s})
	if err != nil {
		return nil, err
	}
	elem, err := element.NewElement(t, v, val)
	if err != nil {
		return nil, err
	}
	if err := ds.Add(elem); err != nil {
		return nil, err
	}
	return elem, nil
}
