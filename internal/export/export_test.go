package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dressdash/internal/models"
)

func sampleTable() Table {
	return Table{
		Title:   "Stores",
		Columns: []string{"Store Name", "Package", "Credits/Job"},
		Rows: [][]string{
			{"Nile Fashion", "Pro", "12"},
			{"Cairo, Mall", "Trial", "-"},
		},
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, CSV, sampleTable()))

	want := "Store Name,Package,Credits/Job\n" +
		"Nile Fashion,Pro,12\n" +
		"\"Cairo, Mall\",Trial,-\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_HTML(t *testing.T) {
	var buf bytes.Buffer
	tbl := sampleTable()
	tbl.Rows[0][0] = "<b>Nile</b>"
	require.NoError(t, Write(context.Background(), &buf, HTML, tbl))

	out := buf.String()
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "Store Name")
	assert.Contains(t, out, "&lt;b&gt;Nile&lt;/b&gt;")
	assert.NotContains(t, out, "<b>Nile</b>")
}

func TestWrite_Empty(t *testing.T) {
	err := Write(context.Background(), &bytes.Buffer{}, CSV, Table{Columns: []string{"a"}})
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, HTML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, CSV, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, "image-jobs-20240309-140507.csv", FileName("Image Jobs", CSV, at))
	assert.Equal(t, "export-20240309-140507.html", FileName("!!", HTML, at))
}

type recorded struct {
	records []models.ExportRecord
}

func (r *recorded) Record(_ context.Context, rec models.ExportRecord) (int64, error) {
	r.records = append(r.records, rec)
	return int64(len(r.records)), nil
}

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	rec := &recorded{}
	e := &Exporter{
		Dir:      dir,
		Recorder: rec,
		Now:      func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
	}

	path, err := e.Export(context.Background(), "stores", CSV, sampleTable())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stores-20240102-030405.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Nile Fashion,Pro,12")

	require.Len(t, rec.records, 1)
	assert.Equal(t, 2, rec.records[0].Rows)
	assert.Equal(t, "csv", rec.records[0].Format)
}

func TestExporter_RefusesEmpty(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Dir: dir}

	_, err := e.Export(context.Background(), "stores", CSV, Table{Columns: []string{"a"}})
	assert.ErrorIs(t, err, ErrNothingToExport)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
