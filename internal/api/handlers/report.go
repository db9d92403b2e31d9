package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/valuelab/vehicle-appraisal/internal/metrics"
	"github.com/valuelab/vehicle-appraisal/internal/report"
	"github.com/valuelab/vehicle-appraisal/internal/store"
)

// ReportHandler serves rendered appraisal reports. Registered as a raw
// echo route because the response body is a document, not JSON.
type ReportHandler struct {
	store store.Store
	pdf   *report.PDFRenderer // nil when PDF output is disabled
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(s store.Store, pdf *report.PDFRenderer) *ReportHandler {
	return &ReportHandler{store: s, pdf: pdf}
}

// Get handles GET /api/v1/appraisals/:id/report?format=markdown|html|pdf.
func (h *ReportHandler) Get(c echo.Context) error {
	id := c.Param("id")
	format := c.QueryParam("format")
	if format == "" {
		format = "markdown"
	}

	switch format {
	case "markdown", "html", "pdf":
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "unknown format " + format + ", expected markdown, html, or pdf",
		})
	}
	if format == "pdf" && h.pdf == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "pdf output is disabled",
		})
	}

	ctx := c.Request().Context()

	appr, err := h.store.GetAppraisal(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "appraisal not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "loading appraisal: " + err.Error(),
		})
	}

	comps, err := h.store.ListComparables(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "loading comparables: " + err.Error(),
		})
	}

	analysis, err := h.store.GetCurrentAnalysis(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "no analysis computed for this appraisal",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "loading analysis: " + err.Error(),
		})
	}

	start := time.Now()

	md, err := report.BuildMarkdown(appr, comps, analysis)
	if err != nil {
		metrics.ReportFailuresTotal.WithLabelValues(format).Inc()
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "building report: " + err.Error(),
		})
	}

	if format == "markdown" {
		metrics.ReportDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	}

	doc, err := report.RenderHTML(md, fmt.Sprintf("Appraisal Report: %s", appr.Label()))
	if err != nil {
		metrics.ReportFailuresTotal.WithLabelValues(format).Inc()
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "rendering report: " + err.Error(),
		})
	}

	if format == "html" {
		metrics.ReportDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
		return c.HTML(http.StatusOK, doc)
	}

	pdf, err := h.pdf.Render(ctx, doc)
	if err != nil {
		metrics.ReportFailuresTotal.WithLabelValues(format).Inc()
		if errors.Is(err, report.ErrChromeNotFound) {
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "pdf rendering unavailable: " + err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "rendering pdf: " + err.Error(),
		})
	}

	metrics.ReportDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "appraisal-"+id+".pdf"))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
