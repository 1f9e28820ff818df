// Package config loads and validates ProjectModel.json, the anonymizer
// core's project configuration file.
//
// Settings are layered: defaults → ProjectModel.json → environment
// variables (the RADX_* prefix wins over the file, which wins over
// defaults). Layering is implemented with dario.cat/mergo so later layers
// only override fields they actually set, rather than zeroing the rest of
// the struct.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
)

// AWSCognitoConfig holds the identity-pool credential-refresh settings
// named in spec.md's persisted-state description. The actual refresh flow
// lives in internal/control and is implemented over golang.org/x/oauth2
// since no AWS SDK is available anywhere in the retrieval pack this module
// was built from; the field names are kept for config-file compatibility.
type AWSCognitoConfig struct {
	IdentityPoolID string `json:"identity_pool_id" validate:"required_with=ExportToAWS"`
	Region         string `json:"region" validate:"required_with=ExportToAWS"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

// AETitle is a local/query/export Application Entity triple.
type AETitle struct {
	AETitle string `json:"ae_title" validate:"required"`
	Host    string `json:"host" validate:"required"`
	Port    int    `json:"port" validate:"required,min=1,max=65535"`
}

// Timeouts holds the four configurable timeouts from §5.
type Timeouts struct {
	TCPConnectSeconds    int `json:"tcp_connect_seconds" validate:"min=1"`
	AssociationSeconds   int `json:"association_seconds" validate:"min=1"`
	DIMSEMessageSeconds  int `json:"dimse_message_seconds" validate:"min=1"`
	NetworkSeconds       int `json:"network_seconds" validate:"min=1"`
}

// WorkerCounts holds the three configurable pool sizes from §5.
type WorkerCounts struct {
	AnonymizerWorkers int `json:"anonymizer_workers" validate:"min=1"`
	StudyMoveWorkers  int `json:"study_move_workers" validate:"min=1"`
	ExportWorkers     int `json:"export_workers" validate:"min=1"`
}

// Model is the full ProjectModel.json document (spec.md §6).
type Model struct {
	SiteID           string           `json:"site_id" validate:"required"`
	UIDRoot          string           `json:"uid_root" validate:"required"`
	StorageDir       string           `json:"storage_dir" validate:"required"`
	Modalities       []string         `json:"modalities" validate:"required,min=1,dive,required"`
	StorageClasses   []string         `json:"storage_classes" validate:"required,min=1,dive,required"`
	TransferSyntaxes []string         `json:"transfer_syntaxes" validate:"required,min=1,dive,required"`
	LocalAE          AETitle          `json:"local_ae" validate:"required"`
	QueryAE          AETitle          `json:"query_ae"`
	ExportAE         AETitle          `json:"export_ae"`
	Timeouts         Timeouts         `json:"timeouts"`
	Workers          WorkerCounts     `json:"workers"`
	LoggingLevel     string           `json:"logging_level" validate:"oneof=debug info warn error"`
	AWSCognito       AWSCognitoConfig `json:"aws_cognito"`
	ExportToAWS      bool             `json:"export_to_aws"`
	GCSBucket        string           `json:"gcs_bucket" validate:"required_if=ExportToAWS true"`
	GCSPrefix        string           `json:"gcs_prefix"`
	ProjectName      string           `json:"project_name" validate:"required"`

	// ScriptPath points at the anonymizer script file (spec.md §4.B's
	// ordered (tag, operator, args) triples); empty uses the built-in
	// RSNA default script.
	ScriptPath string `json:"script_path"`

	// MaxPatients bounds the PHI Index Store's patient counter (§4.A).
	MaxPatients int `json:"max_patients" validate:"min=1"`

	// MemoryBackoff controls §4.D's memory-pressure backoff.
	MemoryBackoffThresholdBytes uint64  `json:"memory_backoff_threshold_bytes" validate:"min=1"`
	MemoryBackoffSleepSeconds   float64 `json:"memory_backoff_sleep_seconds" validate:"min=0"`
	MemoryBackoffMaxRetries     int     `json:"memory_backoff_max_retries" validate:"min=1"`

	QueueCapacity         int     `json:"queue_capacity" validate:"min=1"`
	WorkerDequeueTimeout  float64 `json:"worker_dequeue_timeout_seconds" validate:"min=0"`
	WorkerIdleSleepSecs   float64 `json:"worker_idle_sleep_seconds" validate:"min=0"`
	AutosaveIntervalSecs  float64 `json:"autosave_interval_seconds" validate:"min=1"`

	ExportBatchSize int `json:"export_batch_size" validate:"min=1"`
}

func defaults() *Model {
	return &Model{
		LoggingLevel: "info",
		Timeouts: Timeouts{
			TCPConnectSeconds:   10,
			AssociationSeconds:  30,
			DIMSEMessageSeconds: 60,
			NetworkSeconds:      120,
		},
		Workers: WorkerCounts{
			AnonymizerWorkers: 4,
			StudyMoveWorkers:  2,
			ExportWorkers:     4,
		},
		MaxPatients:                 1_000_000,
		MemoryBackoffThresholdBytes: 512 * 1024 * 1024,
		MemoryBackoffSleepSeconds:   0.1,
		MemoryBackoffMaxRetries:     50,
		QueueCapacity:               1000,
		WorkerDequeueTimeout:        0.5,
		WorkerIdleSleepSecs:         0.25,
		AutosaveIntervalSecs:        30,
		ExportBatchSize:             25,
	}
}

// Load reads path, layering its contents over the built-in defaults and
// then over RADX_* environment variables, and validates the result.
func Load(path string) (*Model, error) {
	m := defaults()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: operator-provided config path
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		var fileModel Model
		if err := json.Unmarshal(data, &fileModel); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := mergo.Merge(m, fileModel, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config %s: %w", path, err)
		}
	}

	applyEnv(m)

	if err := Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// applyEnv overrides operational knobs from RADX_* environment variables,
// the outermost layer of the default → file → env precedence.
func applyEnv(m *Model) {
	if v := os.Getenv("RADX_LOCAL_AE_HOST"); v != "" {
		m.LocalAE.Host = v
	}
	if v := os.Getenv("RADX_LOCAL_AE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			m.LocalAE.Port = n
		}
	}
	if v := os.Getenv("RADX_LOGGING_LEVEL"); v != "" {
		m.LoggingLevel = strings.ToLower(v)
	}
	if v := os.Getenv("RADX_ANONYMIZER_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			m.Workers.AnonymizerWorkers = n
		}
	}
	if v := os.Getenv("RADX_STUDY_MOVE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			m.Workers.StudyMoveWorkers = n
		}
	}
	if v := os.Getenv("RADX_EXPORT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			m.Workers.ExportWorkers = n
		}
	}
	if v := os.Getenv("RADX_STORAGE_DIR"); v != "" {
		m.StorageDir = v
	}
}

var validate = validator.New()

// Validate runs struct validation over m and aggregates every failing
// field into a single error instead of stopping at the first one, so a
// CLI config error (exit code 2) can report everything wrong in one pass.
func Validate(m *Model) error {
	if err := validate.Struct(m); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("config validation: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q (value=%v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(msgs, "\n  "))
	}
	return nil
}
