package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorAlwaysHTTP200WithRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Error(c, CodeConflict, "conflict")

	if w.Code != http.StatusOK {
		t.Fatalf("expected http 200, got %d", w.Code)
	}
	var body struct {
		StatusCode int               `json:"status_code"`
		Msg        string            `json:"msg"`
		Data       map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.StatusCode != CodeConflict || body.Msg != "conflict" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Data["request_id"] != "req-1" {
		t.Fatalf("expected request id in data, got %+v", body.Data)
	}
}

func TestSuccessWithPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessWithPage(c, []string{"a"}, Pagination{Page: 1, PageSize: 20, Total: 1, TotalPage: 1})

	var body PageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.StatusCode != CodeOK || body.Pagination.Total != 1 {
		t.Fatalf("unexpected page body: %+v", body)
	}
}

func TestNewPaginationRoundsUp(t *testing.T) {
	if got := NewPagination(2, 20, 41); got.TotalPage != 3 {
		t.Fatalf("expected 3 pages, got %+v", got)
	}
	if got := NewPagination(1, 0, 5); got.TotalPage != 0 {
		t.Fatalf("expected 0 pages for zero page size, got %+v", got)
	}
}

func TestAppErrorSeverity(t *testing.T) {
	if WrapError(CodeNotFound, "missing", nil).IsServerError() {
		t.Fatalf("404 must not be a server error")
	}
	if !WrapError(CodeInternal, "boom", nil).IsServerError() {
		t.Fatalf("500 must be a server error")
	}
}
