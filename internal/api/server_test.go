package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsift/adapters/excel"
	"gridsift/adapters/phone"
	"gridsift/adapters/report"
	"gridsift/app"
	"gridsift/domain/grid"
	"gridsift/domain/run"
	"gridsift/internal/config"
)

const sampleExport = `Numero du Groupe,G-104,,
Code,Nom et Prénom,Courriel,Téléphone
A-1,Marie Tremblay,marie@example.com,(514) 555-0100
A-2,,solo@example.com,
`

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	outputRoot := t.TempDir()
	cfg := config.ExtractConfig{
		HeaderBounds:   grid.DefaultHeaderBounds(),
		MetadataBounds: grid.DefaultMetadataBounds(),
		SnapshotBounds: grid.DefaultSnapshotBounds(),
		PhoneRegion:    "CA",
		OutputRoot:     outputRoot,
	}
	extract := app.NewExtractService(
		excel.NewDataReader(),
		phone.NewE164Normalizer(),
		report.NewFactory(outputRoot),
		cfg,
	)
	return NewServer(extract, t.TempDir(), outputRoot), outputRoot
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/runs", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateRunReturnsSummary(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, uploadRequest(t, "export.csv", sampleExport))
	require.Equal(t, http.StatusCreated, rec.Code)

	var summary run.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "G-104", summary.GroupNumber)
	assert.Equal(t, 1, summary.HeaderRowIndex)
	assert.Equal(t, 1, summary.RowsAccepted)
	assert.Equal(t, 1, summary.RowsRejected)
	assert.True(t, summary.Consistent())
}

func TestCreateRunWithoutFile(t *testing.T) {
	server, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/runs", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRunUnlocatableHeader(t *testing.T) {
	server, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, uploadRequest(t, "noise.csv", "du bruit,partout\n"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "HEADER_NOT_FOUND", body["code"])
}

func TestRunSummaryAndReportEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, uploadRequest(t, "export.csv", sampleExport))
	require.Equal(t, http.StatusCreated, rec.Code)

	var summary run.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	runID := filepath.Base(summary.OutputDir)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/"+runID+"/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "G-104")

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/"+runID+"/report", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "G-104")
}

func TestRunEndpointsUnknownRun(t *testing.T) {
	server, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/absent/summary", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
