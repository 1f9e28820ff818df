package phiindex

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	bolt "go.etcd.io/bbolt"

	"github.com/codeninja55/go-radx/internal/rerr"
)

// renameSnapshot finalizes an atomic snapshot write: the temp file written
// by Save is renamed into place, matching §4.C's "write to a temp name
// then rename" rule.
func renameSnapshot(tmp, final string) error {
	if err := os.Rename(tmp, final); err != nil {
		return rerr.Wrap(rerr.StorageError, "rename snapshot into place", err)
	}
	return nil
}

// ModelVersion is written to every snapshot's header. A forward-incompatible
// read (a file written by a newer version than this one understands) fails
// with rerr.ModelVersionMismatch (spec.md §6, design note in §9).
const ModelVersion = 1

var (
	bucketMeta     = []byte("meta")
	bucketPatients = []byte("patients") // phi id -> anon id
	bucketUIDs     = []byte("uids")     // phi uid -> anon uid
	bucketAccs     = []byte("accs")     // phi acc -> anon acc
	bucketTree     = []byte("tree")     // anon patient id -> json(PHI)

	keyVersion     = []byte("version")
	keySiteID      = []byte("site_id")
	keyUIDRoot     = []byte("uid_root")
	keyNextPatient = []byte("next_patient_n")
	keyNextUID     = []byte("next_uid_n")
	keyNextAcc     = []byte("next_acc_n")
	keyMaxPatients = []byte("max_patients")
)

// treeRecord is the JSON encoding used for each PHI tree node persisted
// under bucketTree, keyed by anon patient id.
type treeRecord struct {
	PHI *PHI `json:"phi"`
}

func itob(n int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(n))
	return b
}

func btoi(b []byte) int {
	return int(binary.BigEndian.Uint64(b))
}

// Save serializes the store to an embedded bbolt database at path,
// overwriting any existing file. Save takes a read lock only — consistent
// with the design note that serialization must be concurrent-safe with
// ongoing writers via a snapshot-under-lock strategy (spec.md §4.D).
func (s *Store) Save(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := bolt.Open(path+".tmp", 0o600, nil)
	if err != nil {
		return rerr.Wrap(rerr.StorageError, "open snapshot for write", err)
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}
		if err := meta.Put(keyVersion, itob(ModelVersion)); err != nil {
			return err
		}
		if err := meta.Put(keySiteID, []byte(s.siteID)); err != nil {
			return err
		}
		if err := meta.Put(keyUIDRoot, []byte(s.uidRoot)); err != nil {
			return err
		}
		if err := meta.Put(keyNextPatient, itob(s.nextPatientN)); err != nil {
			return err
		}
		if err := meta.Put(keyNextUID, itob(s.nextUIDN)); err != nil {
			return err
		}
		if err := meta.Put(keyNextAcc, itob(s.nextAccN)); err != nil {
			return err
		}
		if err := meta.Put(keyMaxPatients, itob(s.maxPatients)); err != nil {
			return err
		}

		for _, b := range [][]byte{bucketPatients, bucketUIDs, bucketAccs, bucketTree} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}

		patients := tx.Bucket(bucketPatients)
		for phi, anon := range s.patientPHIToAnon {
			if err := patients.Put([]byte(phi), []byte(anon)); err != nil {
				return err
			}
		}
		uids := tx.Bucket(bucketUIDs)
		for phi, anon := range s.uidPHIToAnon {
			if err := uids.Put([]byte(phi), []byte(anon)); err != nil {
				return err
			}
		}
		accs := tx.Bucket(bucketAccs)
		for phi, anon := range s.accPHIToAnon {
			if err := accs.Put([]byte(phi), []byte(anon)); err != nil {
				return err
			}
		}
		tree := tx.Bucket(bucketTree)
		for anonID, phi := range s.phiByAnonPatient {
			data, err := json.Marshal(treeRecord{PHI: phi})
			if err != nil {
				return err
			}
			if err := tree.Put([]byte(anonID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return rerr.Wrap(rerr.StorageError, "write snapshot", err)
	}
	if err := db.Close(); err != nil {
		return rerr.Wrap(rerr.StorageError, "close snapshot", err)
	}
	return renameSnapshot(path+".tmp", path)
}

// Load deserializes a Store from an embedded bbolt database at path. A
// version mismatch (a snapshot written by a model version this build does
// not understand) is fatal per spec.md §7.
func Load(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{ReadOnly: true})
	if err != nil {
		return nil, rerr.Wrap(rerr.StorageError, "open snapshot", err)
	}
	defer db.Close()

	s := &Store{
		patientPHIToAnon: make(map[string]string),
		patientAnonToPHI: make(map[string]string),
		uidPHIToAnon:     make(map[string]string),
		uidAnonToPHI:     make(map[string]string),
		accPHIToAnon:     make(map[string]string),
		accAnonToPHI:     make(map[string]string),
		phiByPHIPatient:  make(map[string]*PHI),
		phiByAnonPatient: make(map[string]*PHI),
	}

	err = db.View(func(tx *bolt.Tx) error {
		meta := tx.Bucket(bucketMeta)
		if meta == nil {
			return fmt.Errorf("snapshot missing meta bucket")
		}
		v := meta.Get(keyVersion)
		if v == nil || btoi(v) != ModelVersion {
			got := -1
			if v != nil {
				got = btoi(v)
			}
			return rerr.New(rerr.ModelVersionMismatch, fmt.Sprintf("snapshot version %d, want %d", got, ModelVersion))
		}
		s.siteID = string(meta.Get(keySiteID))
		s.uidRoot = string(meta.Get(keyUIDRoot))
		s.nextPatientN = btoi(meta.Get(keyNextPatient))
		s.nextUIDN = btoi(meta.Get(keyNextUID))
		s.nextAccN = btoi(meta.Get(keyNextAcc))
		s.maxPatients = btoi(meta.Get(keyMaxPatients))

		if b := tx.Bucket(bucketPatients); b != nil {
			_ = b.ForEach(func(k, v []byte) error {
				s.patientPHIToAnon[string(k)] = string(v)
				s.patientAnonToPHI[string(v)] = string(k)
				return nil
			})
		}
		if b := tx.Bucket(bucketUIDs); b != nil {
			_ = b.ForEach(func(k, v []byte) error {
				s.uidPHIToAnon[string(k)] = string(v)
				s.uidAnonToPHI[string(v)] = string(k)
				return nil
			})
		}
		if b := tx.Bucket(bucketAccs); b != nil {
			_ = b.ForEach(func(k, v []byte) error {
				s.accPHIToAnon[string(k)] = string(v)
				s.accAnonToPHI[string(v)] = string(k)
				return nil
			})
		}
		if b := tx.Bucket(bucketTree); b != nil {
			_ = b.ForEach(func(k, v []byte) error {
				var rec treeRecord
				dec := json.NewDecoder(bytes.NewReader(v))
				if err := dec.Decode(&rec); err != nil {
					return err
				}
				s.phiByAnonPatient[string(k)] = rec.PHI
				s.phiByPHIPatient[rec.PHI.PatientID] = rec.PHI
				s.totalStudies += len(rec.PHI.Studies)
				for _, st := range rec.PHI.Studies {
					s.totalSeries += len(st.Series)
					for _, sr := range st.Series {
						s.totalInstances += sr.InstanceCount()
					}
				}
				return nil
			})
		}
		return nil
	})
	if err != nil {
		if _, ok := rerr.KindOf(err); ok {
			return nil, err
		}
		return nil, rerr.Wrap(rerr.StorageError, "read snapshot", err)
	}
	return s, nil
}
