package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, m Model) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ProjectModel.json")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func validModel() Model {
	return Model{
		SiteID:           "RSNA-0001",
		UIDRoot:          "1.2.826.0.1.3680043.10.474",
		StorageDir:       "/data/anon",
		Modalities:       []string{"CT", "MR"},
		StorageClasses:   []string{"1.2.840.10008.5.1.4.1.1.2"},
		TransferSyntaxes: []string{"1.2.840.10008.1.2.1"},
		LocalAE:          AETitle{AETitle: "RADX_SCP", Host: "0.0.0.0", Port: 11112},
		LoggingLevel:     "info",
		ProjectName:      "test-project",
		MaxPatients:      1000,
	}
}

func TestLoad_DefaultsLayeredUnderFile(t *testing.T) {
	path := writeConfig(t, validModel())

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "RSNA-0001", m.SiteID)
	// Defaults survive where the file left zero values.
	assert.Equal(t, 4, m.Workers.AnonymizerWorkers)
	assert.Equal(t, 2, m.Workers.StudyMoveWorkers)
	assert.Equal(t, 30.0, m.AutosaveIntervalSecs)
}

func TestLoad_MissingRequiredField(t *testing.T) {
	bad := validModel()
	bad.SiteID = ""
	path := writeConfig(t, bad)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SiteID")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, validModel())
	t.Setenv("RADX_LOGGING_LEVEL", "debug")
	t.Setenv("RADX_ANONYMIZER_WORKERS", "8")

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", m.LoggingLevel)
	assert.Equal(t, 8, m.Workers.AnonymizerWorkers)
}

func TestLoad_GCSBucketRequiredWhenExportToAWS(t *testing.T) {
	m := validModel()
	m.ExportToAWS = true
	path := writeConfig(t, m)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GCSBucket")
}

func TestValidate_AggregatesAllFailures(t *testing.T) {
	m := &Model{}
	err := Validate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SiteID")
	assert.Contains(t, err.Error(), "UIDRoot")
}
