package helper

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/avendel/folio/internal/storage"
)

func testRouter(t *testing.T) (http.Handler, *storage.DataFile) {
	t.Helper()
	file, err := storage.NewDataFile(filepath.Join(t.TempDir(), "portfolioData.ts"))
	if err != nil {
		t.Fatalf("NewDataFile: %v", err)
	}
	return NewRouter(file, "*"), file
}

func postContent(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/save-portfolio-data", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSaveWritesVerbatim(t *testing.T) {
	router, file := testRouter(t)
	content := "export const portfolioData: PortfolioData = {\n  projects: []\n};\n"

	w := postContent(t, router, map[string]string{"content": content})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]bool
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp["success"] {
		t.Error("missing success indicator")
	}

	got, err := file.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != content {
		t.Errorf("file content = %q, want verbatim %q", got, content)
	}
}

func TestSaveRejectsEmptyContent(t *testing.T) {
	router, file := testRouter(t)

	w := postContent(t, router, map[string]string{"content": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if file.Exists() {
		t.Error("empty request must not create the file")
	}
}

func TestSaveRejectsInvalidJSON(t *testing.T) {
	router, _ := testRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/save-portfolio-data", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	router, _ := testRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/save-portfolio-data", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS origin header")
	}
}
