package main

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Baugest615/case-management/models"
	"github.com/Baugest615/case-management/pkg/receipt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	cfg  Config
	repo *CaseRepository
)

func setupRoutes(r *gin.Engine) {
	r.GET("/health", healthHandler)
	r.GET("/meta/constants", constantsHandler)
	r.GET("/connection", connectionHandler)
	r.POST("/connection/retry", retryConnectionHandler)
	r.GET("/cases", listCasesHandler)
	r.POST("/cases", createCaseHandler)
	r.POST("/cases/refresh", refreshCasesHandler)
	r.GET("/cases/stats", statsHandler)
	r.PUT("/cases/:id", updateCaseHandler)
	r.DELETE("/cases/:id", deleteCaseHandler)
	r.POST("/cases/:id/receipt", uploadReceiptHandler)
	r.GET("/cases/:id/receipts", listReceiptsHandler)
	r.DELETE("/errors", clearErrorHandler)
}

// writeCaseError converts a repository error into the right HTTP status:
// validation 400 with per-field messages, unknown id 404, remote failure 502.
func writeCaseError(c *gin.Context, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Result.Errors})
		return
	}
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func healthHandler(c *gin.Context) {
	if err := repo.store.Probe(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func constantsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":     models.CaseCategories,
		"statuses":       models.CaseStatuses,
		"vendors":        models.Vendors,
		"paymentMethods": models.PaymentMethods,
		"commonTags":     models.CommonTags,
		"statusColors":   models.StatusColors,
	})
}

func connectionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    repo.ConnectionStatus(),
		"lastError": repo.LastError(),
	})
}

// retryConnectionHandler re-probes the store and reloads the list, replacing
// any seed fallback with live data on success.
func retryConnectionHandler(c *gin.Context) {
	repo.Initialize(c.Request.Context())
	status := repo.ConnectionStatus()
	code := http.StatusOK
	if status == ConnFailed {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "lastError": repo.LastError()})
}

// listCasesHandler returns the current view, optionally narrowed by the
// search and status query params.
func listCasesHandler(c *gin.Context) {
	term := c.Query("search")
	status := c.DefaultQuery("status", models.StatusAll)
	cases := FilterCases(repo.List(), term, status)
	c.JSON(http.StatusOK, cases)
}

func createCaseHandler(c *gin.Context) {
	var in CaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := repo.Add(c.Request.Context(), in)
	if err != nil {
		writeCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func updateCaseHandler(c *gin.Context) {
	id, ok := caseIDParam(c)
	if !ok {
		return
	}
	var in CaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := repo.Update(c.Request.Context(), id, in)
	if err != nil {
		writeCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func deleteCaseHandler(c *gin.Context) {
	id, ok := caseIDParam(c)
	if !ok {
		return
	}
	if err := repo.Delete(c.Request.Context(), id); err != nil {
		writeCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "case deleted"})
}

func refreshCasesHandler(c *gin.Context) {
	if err := repo.Refresh(c.Request.Context()); err != nil {
		writeCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, repo.List())
}

// statsHandler aggregates the filtered view selected by the same query params
// as the list endpoint.
func statsHandler(c *gin.Context) {
	term := c.Query("search")
	status := c.DefaultQuery("status", models.StatusAll)
	subset := FilterCases(repo.List(), term, status)
	c.JSON(http.StatusOK, repo.Stats(subset))
}

func clearErrorHandler(c *gin.Context) {
	repo.ClearError()
	c.JSON(http.StatusOK, gin.H{"message": "error cleared"})
}

// uploadReceiptHandler stores a receipt image for a case and returns an
// OCR-extracted amount suggestion when one can be read.
func uploadReceiptHandler(c *gin.Context) {
	id, ok := caseIDParam(c)
	if !ok {
		return
	}
	var existing models.Case
	if err := db.First(&existing, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > 5*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 5MB)"})
		return
	}
	dir := filepath.Join(cfg.UploadBase, "case-"+strconv.FormatUint(uint64(id), 10))
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mkdir failed"})
		return
	}
	stored := uuid.NewString() + filepath.Ext(file.Filename)
	fullPath := filepath.Join(dir, stored)
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	rec := models.Receipt{
		CaseID:      id,
		FileName:    file.Filename,
		StorePath:   fullPath,
		ContentType: file.Header.Get("Content-Type"),
	}
	// OCR failure is not a request failure; the attachment stands on its own.
	if amt, conf, _, err := receipt.ExtractAmount(fullPath); err == nil && amt > 0 {
		rec.SuggestedAmount = amt
		rec.OCRConfidence = conf
	}
	if err := db.Create(&rec).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func listReceiptsHandler(c *gin.Context) {
	id, ok := caseIDParam(c)
	if !ok {
		return
	}
	var receipts []models.Receipt
	if err := db.Where("case_id = ?", id).Order("id desc").Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, receipts)
}

func caseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return 0, false
	}
	return uint(id), true
}
