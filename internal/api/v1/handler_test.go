package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"tradelens/internal/analysis"
	v1 "tradelens/internal/api/v1"
	"tradelens/internal/config"
	"tradelens/internal/dataset"
	"tradelens/internal/geo"
	"tradelens/internal/metrics"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.DefaultConfig()
	cfg.Data.DataDir = t.TempDir()
	writeCountryFixture(t, cfg)

	data := dataset.NewService(cfg, dataset.NewCache(), nil, metrics.NewRegistry(), geo.NewResolver())
	trends := analysis.NewTrendBuilder(data, data, nil)

	r := gin.New()
	v1.NewHandler(data, trends, cfg).RegisterRoutes(r.Group("/api"))
	return r
}

func writeCountryFixture(t *testing.T, cfg *config.AppConfig) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Countries", "2080/081_import", "2080/081_export", "2081/082_import", "2081/082_export"},
		{"India", "1000", "200", "1500", "300"},
		{"China", "500", "100", "600", "120"},
		{"Japan", "50", "10", "60", "12"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.SaveAs(filepath.Join(cfg.Data.DataDir, cfg.Data.CountryFile)); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListYears(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/years?view=country&order=desc")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Years []string `json:"years"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(resp.Years) != 2 || resp.Years[0] != "2081/082" {
		t.Fatalf("years = %v", resp.Years)
	}
}

func TestListYearsRejectsBadParams(t *testing.T) {
	r := newTestRouter(t)

	if w := doGet(t, r, "/api/years?view=galaxy"); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown view: status=%d", w.Code)
	}
	if w := doGet(t, r, "/api/years?view=country&order=sideways"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad order: status=%d", w.Code)
	}
}

func TestListRecordsValidation(t *testing.T) {
	r := newTestRouter(t)

	if w := doGet(t, r, "/api/records?view=country"); w.Code != http.StatusBadRequest {
		t.Fatalf("missing year: status=%d", w.Code)
	}
	if w := doGet(t, r, "/api/records?view=country&year=nonsense"); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed year: status=%d", w.Code)
	}
	if w := doGet(t, r, "/api/records?view=country&year=2070/071"); w.Code != http.StatusNotFound {
		t.Fatalf("absent year: status=%d", w.Code)
	}
}

func TestTopRecords(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/top?view=country&year=2081/082&metric=imports&n=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Records []struct {
			Name           string `json:"name"`
			FormattedValue string `json:"formattedValue"`
		} `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(resp.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(resp.Records))
	}
	if resp.Records[0].Name != "India" {
		t.Fatalf("records[0] = %q", resp.Records[0].Name)
	}
	// 1500 thousand scales to 1.5M rupees.
	if resp.Records[0].FormattedValue != "1.500M" {
		t.Fatalf("formatted = %q", resp.Records[0].FormattedValue)
	}
}

func TestTopRecordsRejectsBadMetric(t *testing.T) {
	r := newTestRouter(t)

	if w := doGet(t, r, "/api/top?view=country&year=2081/082&metric=vibes"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad metric: status=%d", w.Code)
	}
	if w := doGet(t, r, "/api/top?view=country&year=2081/082&n=-3"); w.Code != http.StatusBadRequest {
		t.Fatalf("negative n: status=%d", w.Code)
	}
}

func TestGetTrend(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/trend?view=country&name=India")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Years   []string  `json:"years"`
		Imports []float64 `json:"imports"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(resp.Years) != 2 || len(resp.Imports) != 2 {
		t.Fatalf("years=%v imports=%v", resp.Years, resp.Imports)
	}
	if resp.Imports[0] != 1000000 || resp.Imports[1] != 1500000 {
		t.Fatalf("imports = %v", resp.Imports)
	}
}

func TestStatusEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/status")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var resp struct {
		Status string   `json:"status"`
		Views  []string `json:"views"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.Status != "ok" || len(resp.Views) != 3 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestCacheEndpoints(t *testing.T) {
	r := newTestRouter(t)

	// Warm the cache.
	if w := doGet(t, r, "/api/years?view=country"); w.Code != http.StatusOK {
		t.Fatalf("warmup failed: %d", w.Code)
	}

	w := doGet(t, r, "/api/cache")
	if w.Code != http.StatusOK {
		t.Fatalf("cache info: status=%d", w.Code)
	}
	var info struct {
		Size int `json:"size"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if info.Size != 1 {
		t.Fatalf("cache size = %d, want 1", info.Size)
	}

	del := httptest.NewRecorder()
	r.ServeHTTP(del, httptest.NewRequest(http.MethodDelete, "/api/cache", nil))
	if del.Code != http.StatusOK {
		t.Fatalf("cache clear: status=%d", del.Code)
	}

	w = doGet(t, r, "/api/cache")
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if info.Size != 0 {
		t.Fatalf("cache size after clear = %d, want 0", info.Size)
	}
}
