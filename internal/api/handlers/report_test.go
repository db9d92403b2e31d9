package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/valuelab/vehicle-appraisal/internal/api/handlers"
	"github.com/valuelab/vehicle-appraisal/internal/store"
	storeMocks "github.com/valuelab/vehicle-appraisal/internal/store/mocks"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
	"github.com/valuelab/vehicle-appraisal/pkg/valuation"
)

// reportAnalysis runs a real computation so the persisted trace has the
// shape the report builder expects.
func reportAnalysis(t *testing.T, appr *domain.Appraisal, comps []domain.Comparable) *domain.MarketAnalysis {
	t.Helper()

	subject := valuation.VehicleData{
		Year:      appr.Year,
		Mileage:   appr.Mileage,
		Condition: string(appr.Condition),
		Equipment: appr.Equipment,
	}
	compData := make([]valuation.CompData, len(comps))
	for i, c := range comps {
		compData[i] = valuation.CompData{
			Ref:           c.ID,
			Year:          c.Year,
			Mileage:       c.Mileage,
			DistanceMiles: c.DistanceMiles,
			Condition:     string(c.Condition),
			Equipment:     c.Equipment,
			ListPrice:     c.ListPrice,
		}
	}
	result := valuation.Compute(subject, compData, appr.ReferenceValue, valuation.DefaultTables(2024))

	trace, err := json.Marshal(result)
	require.NoError(t, err)

	return &domain.MarketAnalysis{
		ID:          "an-1",
		AppraisalID: appr.ID,
		Revision:    2,
		MarketValue: result.MarketValue,
		Undervalued: result.Undervalued,
		Confidence:  result.Confidence,
		Trace:       trace,
		ComputedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func reportRequest(h *handlers.ReportHandler, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("appr-1")

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestReportGet_Markdown(t *testing.T) {
	t.Parallel()

	appr := sampleAppraisal("appr-1")
	comps := []domain.Comparable{*sampleComparable("comp-1", "appr-1")}
	analysis := reportAnalysis(t, appr, comps)

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetAppraisal(mock.Anything, "appr-1").Return(appr, nil).Once()
	ms.EXPECT().ListComparables(mock.Anything, "appr-1").Return(comps, nil).Once()
	ms.EXPECT().GetCurrentAnalysis(mock.Anything, "appr-1").Return(analysis, nil).Once()

	h := handlers.NewReportHandler(ms, nil)

	rec := reportRequest(h, "/api/v1/appraisals/appr-1/report")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/markdown")
	assert.Contains(t, rec.Body.String(), "# Vehicle Appraisal Report")
	assert.Contains(t, rec.Body.String(), "CLM-2024-0101")
}

func TestReportGet_HTML(t *testing.T) {
	t.Parallel()

	appr := sampleAppraisal("appr-1")
	comps := []domain.Comparable{*sampleComparable("comp-1", "appr-1")}
	analysis := reportAnalysis(t, appr, comps)

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetAppraisal(mock.Anything, "appr-1").Return(appr, nil).Once()
	ms.EXPECT().ListComparables(mock.Anything, "appr-1").Return(comps, nil).Once()
	ms.EXPECT().GetCurrentAnalysis(mock.Anything, "appr-1").Return(analysis, nil).Once()

	h := handlers.NewReportHandler(ms, nil)

	rec := reportRequest(h, "/api/v1/appraisals/appr-1/report?format=html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "<!doctype html>")
	assert.Contains(t, rec.Body.String(), "Appraisal Report: 2020 Honda Accord (CLM-2024-0101)")
}

func TestReportGet_UnknownFormat(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	h := handlers.NewReportHandler(ms, nil)

	rec := reportRequest(h, "/api/v1/appraisals/appr-1/report?format=docx")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown format docx")
}

func TestReportGet_PDFDisabled(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	h := handlers.NewReportHandler(ms, nil)

	rec := reportRequest(h, "/api/v1/appraisals/appr-1/report?format=pdf")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pdf output is disabled")
}

func TestReportGet_AppraisalNotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetAppraisal(mock.Anything, "appr-1").Return(nil, store.ErrNotFound).Once()

	h := handlers.NewReportHandler(ms, nil)

	rec := reportRequest(h, "/api/v1/appraisals/appr-1/report")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "appraisal not found")
}

func TestReportGet_NoAnalysis(t *testing.T) {
	t.Parallel()

	appr := sampleAppraisal("appr-1")

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetAppraisal(mock.Anything, "appr-1").Return(appr, nil).Once()
	ms.EXPECT().ListComparables(mock.Anything, "appr-1").Return(nil, nil).Once()
	ms.EXPECT().GetCurrentAnalysis(mock.Anything, "appr-1").Return(nil, store.ErrNotFound).Once()

	h := handlers.NewReportHandler(ms, nil)

	rec := reportRequest(h, "/api/v1/appraisals/appr-1/report")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no analysis computed for this appraisal")
}
