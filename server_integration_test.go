package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Baugest615/case-management/models"
	"github.com/Baugest615/case-management/pkg/validation"

	"github.com/gin-gonic/gin"
)

// helper to perform requests against the test router
func performRequest(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set STORE_TEST=1 plus STORE_URL/STORE_KEY to run them.
	if os.Getenv("STORE_TEST") != "1" {
		t.Skip("integration tests are disabled; set STORE_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	var err error
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.UploadBase = t.TempDir()
	initDB(cfg)
	store := NewCaseStore(db, cfg.RemoteTimeout)
	repo = NewCaseRepository(store, validation.DefaultLimits(cfg.MaxCaseAmount), cfg.CreditCardFeeRate)
	repo.Initialize(context.Background())
	r := gin.Default()
	setupRoutes(r)
	return r
}

func TestFullCaseFlow(t *testing.T) {
	r := setupTestServer(t)

	before := len(repo.List())

	// 1. Create a case
	body, _ := json.Marshal(map[string]any{
		"title":   "Flight booking",
		"content": "Round trip",
		"amount":  8500,
		"status":  models.StatusInProgress,
		"tags":    []string{"flight", "business-trip"},
	})
	resp := performRequest(r, http.MethodPost, "/cases", bytes.NewBuffer(body))
	if resp.Code != http.StatusCreated {
		t.Fatalf("create failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var created models.Case
	_ = json.Unmarshal(resp.Body.Bytes(), &created)
	if created.ID == 0 || created.Title != "Flight booking" {
		t.Fatalf("unexpected created case: %+v", created)
	}
	if len(repo.List()) != before+1 {
		t.Fatalf("expected list to grow by one")
	}

	// 2. List with search filter
	resp = performRequest(r, http.MethodGet, "/cases?search=flight", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var listed []models.Case
	_ = json.Unmarshal(resp.Body.Bytes(), &listed)
	if len(listed) == 0 {
		t.Fatalf("expected at least the created case in search results")
	}

	// 3. Stats over the filtered view
	resp = performRequest(r, http.MethodGet, "/cases/stats?search=flight", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("stats failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var stats Stats
	_ = json.Unmarshal(resp.Body.Bytes(), &stats)
	if stats.Total == 0 || stats.TotalAmount < 8500 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	// 4. Update the case
	body, _ = json.Marshal(map[string]any{
		"title":   "Flight booking",
		"content": "Round trip, rescheduled",
		"amount":  9000,
		"status":  models.StatusCompleted,
	})
	resp = performRequest(r, http.MethodPut, fmt.Sprintf("/cases/%d", created.ID), bytes.NewBuffer(body))
	if resp.Code != http.StatusOK {
		t.Fatalf("update failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var updated models.Case
	_ = json.Unmarshal(resp.Body.Bytes(), &updated)
	if updated.Status != models.StatusCompleted {
		t.Fatalf("expected completed status, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("updated_at should move past created_at")
	}

	// 5. Validation failure is a 400 with field messages
	body, _ = json.Marshal(map[string]any{"title": "", "content": "valid content text"})
	resp = performRequest(r, http.MethodPost, "/cases", bytes.NewBuffer(body))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank title, got %d", resp.Code)
	}
	var verr struct {
		Fields map[string]string `json:"fields"`
	}
	_ = json.Unmarshal(resp.Body.Bytes(), &verr)
	if _, ok := verr.Fields["title"]; !ok {
		t.Fatalf("expected title field error, got %s", resp.Body.String())
	}

	// 6. Unknown id is a 404 and leaves the list unchanged
	n := len(repo.List())
	resp = performRequest(r, http.MethodDelete, "/cases/999999999", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", resp.Code)
	}
	if len(repo.List()) != n {
		t.Fatalf("list changed after failed delete")
	}

	// 7. Delete the created case
	resp = performRequest(r, http.MethodDelete, fmt.Sprintf("/cases/%d", created.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	if len(repo.List()) != before {
		t.Fatalf("expected list back at baseline after delete")
	}

	// 8. Constants metadata
	resp = performRequest(r, http.MethodGet, "/meta/constants", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("constants failed status=%d", resp.Code)
	}

	// 9. Connection state endpoint
	resp = performRequest(r, http.MethodGet, "/connection", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("connection failed status=%d", resp.Code)
	}
}

func TestMigrateCommand(t *testing.T) {
	if os.Getenv("STORE_TEST") != "1" {
		t.Skip("integration tests are disabled; set STORE_TEST=1 to enable")
	}
	var err error
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	initDB(cfg)
}
