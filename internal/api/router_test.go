package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LJTian/NewsFetcher/internal/collector"
	"github.com/gin-gonic/gin"
)

type stubFetcher struct {
	params collector.Params
	err    error
}

func (f *stubFetcher) Name() string { return "stub" }

func (f *stubFetcher) Execute(p collector.Params) (*collector.Response, error) {
	f.params = p
	if f.err != nil {
		return nil, f.err
	}
	data := collector.FallbackNews(p.Count, time.Now())
	return &collector.Response{Success: true, Data: &data, Message: "ok"}, nil
}

func newTestRouter(f collector.Fetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewServer(f, collector.Params{Count: 10, Category: collector.DefaultCategory}, nil).RegisterRoutes(r)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doGet(newTestRouter(&stubFetcher{}), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestGetNewsUsesQueryParams(t *testing.T) {
	f := &stubFetcher{}
	w := doGet(newTestRouter(f), "/api/v1/news?count=3&category=tech")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if f.params.Count != 3 || f.params.Category != "tech" {
		t.Fatalf("unexpected params: %+v", f.params)
	}

	var resp collector.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success || resp.Data == nil || len(resp.Data.Items) != 3 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"news":[`) {
		t.Fatalf("items should be encoded under news: %s", w.Body.String())
	}
}

func TestGetNewsAppliesDefaults(t *testing.T) {
	f := &stubFetcher{}
	w := doGet(newTestRouter(f), "/api/v1/news")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if f.params.Count != 10 || f.params.Category != collector.DefaultCategory {
		t.Fatalf("defaults not applied: %+v", f.params)
	}
}

func TestGetNewsRejectsBadCount(t *testing.T) {
	for _, path := range []string{"/api/v1/news?count=abc", "/api/v1/news?count=-2"} {
		w := doGet(newTestRouter(&stubFetcher{}), path)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func TestGetNewsFetchError(t *testing.T) {
	f := &stubFetcher{err: &collector.FetchError{Err: errors.New("boom")}}
	w := doGet(newTestRouter(f), "/api/v1/news")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "新闻获取失败") {
		t.Fatalf("body should carry error message: %s", w.Body.String())
	}
}

func TestGetNewsText(t *testing.T) {
	w := doGet(newTestRouter(&stubFetcher{}), "/api/v1/news/text?count=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "1. 科技发展推动产业升级") || !strings.Contains(body, "⚠️") {
		t.Fatalf("unexpected text body:\n%s", body)
	}
}

func TestListCategories(t *testing.T) {
	w := doGet(newTestRouter(&stubFetcher{}), "/api/v1/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "科技") {
		t.Fatalf("categories missing: %s", w.Body.String())
	}
}
