package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
)

func writeTestDCMFiles(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("instance-%d.dcm", i))
		require.NoError(t, dicom.WriteFileWithOptions(path, testDataSet(t, i), dicom.WriteOptions{}))
	}
}

func testDataSet(t *testing.T, i int) *dicom.DataSet {
	t.Helper()
	ds := dicom.NewDataSet()
	addStringElement(t, ds, tag.SOPClassUID, vr.UniqueIdentifier, "1.2.840.10008.5.1.4.1.1.1")
	addStringElement(t, ds, tag.SOPInstanceUID, vr.UniqueIdentifier, fmt.Sprintf("1.2.3.4.%d", i))
	addStringElement(t, ds, tag.StudyInstanceUID, vr.UniqueIdentifier, "1.2.3.5")
	addStringElement(t, ds, tag.SeriesInstanceUID, vr.UniqueIdentifier, "1.2.3.6")
	addStringElement(t, ds, tag.PatientID, vr.LongString, "PAT001")
	return ds
}

func addStringElement(t *testing.T, ds *dicom.DataSet, tg tag.Tag, v vr.VR, s string) {
	t.Helper()
	val, err := value.NewStringValue(v, []string{s})
	require.NoError(t, err)
	elem, err := element.NewElement(tg, v, val)
	require.NoError(t, err)
	require.NoError(t, ds.Add(elem))
}

func TestImportDirectory_AnonymizesEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeTestDCMFiles(t, dir, 5)

	anon := &fakeAnonymizer{}
	p := newTestPipeline(anon, nil)

	result, err := p.ImportDirectory(context.Background(), dir, ImportOptions{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Imported)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 5, anon.count())
}

func TestImportDirectory_SkipsNonDCMFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestDCMFiles(t, dir, 2)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not dicom"), 0o644))

	anon := &fakeAnonymizer{}
	p := newTestPipeline(anon, nil)

	result, err := p.ImportDirectory(context.Background(), dir, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
}

func TestImportDirectory_CollectsPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	writeTestDCMFiles(t, dir, 2)
	badPath := filepath.Join(dir, "corrupt.dcm")
	require.NoError(t, os.WriteFile(badPath, []byte("not a dicom stream"), 0o644))

	anon := &fakeAnonymizer{}
	p := newTestPipeline(anon, nil)

	result, err := p.ImportDirectory(context.Background(), dir, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Errors, badPath)
}

func TestImportDirectory_ReportsProgress(t *testing.T) {
	dir := t.TempDir()
	writeTestDCMFiles(t, dir, 4)

	var mu sync.Mutex
	var calls []int
	anon := &fakeAnonymizer{}
	p := newTestPipeline(anon, nil)

	result, err := p.ImportDirectory(context.Background(), dir, ImportOptions{
		Workers: 1,
		ProgressCallback: func(current, total int) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, current)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Imported)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, calls, 4)
	assert.Equal(t, 4, calls[len(calls)-1])
}
