package http

import (
	"encoding/json"
	"net/http"

	"github.com/stafftrack/stafftrack-go/internal/domain/report"
	"github.com/stafftrack/stafftrack-go/internal/handler/http/response"
)

type ReportHandler interface {
	GenerateReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GenerateReport implements ReportHandler. The format query parameter
// selects the envelope: json (default) wraps the document in the standard
// response, csv and xlsx stream a file download.
func (h *reportHandlerImpl) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req report.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	doc, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		response.Success(w, doc)

	case "csv":
		data, err := h.reportService.ExportCSV(doc)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+string(req.Type)+`.csv"`)
		_, _ = w.Write(data)

	case "xlsx":
		data, err := h.reportService.ExportXLSX(doc)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+string(req.Type)+`.xlsx"`)
		_, _ = w.Write(data)

	default:
		response.BadRequest(w, "Unknown export format", nil)
	}
}
