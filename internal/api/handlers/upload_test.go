package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"jobboard-utils/internal/config"
	"jobboard-utils/internal/ingest"
	"jobboard-utils/internal/logging"
	"jobboard-utils/pkg/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func buildWorkbook(t *testing.T, headers []string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("failed to write header row: %v", err)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			t.Fatalf("failed to write row %d: %v", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	return buf.Bytes()
}

func uploadRequest(t *testing.T, filename string, content []byte) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req, httptest.NewRecorder()
}

func TestUploadHandlerHappyPath(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"id", "title", "company", "type"},
		[][]string{
			{"1", "Engineer", "Acme", "CONTRACT"},
			{"2", "Designer", "", ""},
		},
	)

	e := echo.New()
	req, rec := uploadRequest(t, "jobs.xlsx", data)
	c := e.NewContext(req, rec)

	handler := UploadHandler(testConfig(t), ingest.NewPipeline(logging.NewMultiLogger()))
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var report models.IngestReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if !report.Success || report.AcceptedCount != 1 || report.RejectedCount != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Jobs[0].ID != "1" || report.Jobs[0].Type != "CONTRACT" {
		t.Fatalf("unexpected job: %+v", report.Jobs[0])
	}
	if len(report.Rejections) != 1 || report.Rejections[0].RowNumber != 2 {
		t.Fatalf("unexpected rejections: %+v", report.Rejections)
	}
}

func TestUploadHandlerRejectsUnknownExtension(t *testing.T) {
	e := echo.New()
	req, rec := uploadRequest(t, "jobs.csv", []byte("id,title\n"))
	c := e.NewContext(req, rec)

	handler := UploadHandler(testConfig(t), ingest.NewPipeline(logging.NewMultiLogger()))
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadHandlerDecodeFailure(t *testing.T) {
	e := echo.New()
	req, rec := uploadRequest(t, "jobs.xlsx", []byte("not a spreadsheet"))
	c := e.NewContext(req, rec)

	handler := UploadHandler(testConfig(t), ingest.NewPipeline(logging.NewMultiLogger()))
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "decode_failed" {
		t.Fatalf("expected decode_failed, got %s", resp.Error)
	}
	if !strings.HasPrefix(resp.Message, "Spreadsheet ingestion failed") {
		t.Fatalf("envelope should carry the ingest error message, got %q", resp.Message)
	}
}

func TestUploadHandlerNoValidRows(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"id", "title", "company"},
		[][]string{
			{"1", "Engineer", ""},
			{"2", "Designer", ""},
		},
	)

	e := echo.New()
	req, rec := uploadRequest(t, "jobs.xlsx", data)
	c := e.NewContext(req, rec)

	handler := UploadHandler(testConfig(t), ingest.NewPipeline(logging.NewMultiLogger()))
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "no_valid_rows" {
		t.Fatalf("expected no_valid_rows, got %s", resp.Error)
	}
}

func TestUploadHandlerMissingFile(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/upload", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := UploadHandler(testConfig(t), ingest.NewPipeline(logging.NewMultiLogger()))
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
