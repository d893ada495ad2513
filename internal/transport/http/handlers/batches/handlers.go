package batchhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"paydispatch/internal/bankfile"
	"paydispatch/internal/disbursement"
	"paydispatch/internal/transport/http/api"
	"paydispatch/internal/transport/http/middleware"
)

type Handler struct {
	service *disbursement.Service
}

func NewHandler(service *disbursement.Service) *Handler {
	return &Handler{service: service}
}

type batchPayload struct {
	Description   string           `json:"description"`
	EffectiveDate string           `json:"effectiveDate"`
	Payments      []paymentPayload `json:"payments"`
}

type paymentPayload struct {
	EmployeeID string          `json:"employeeId"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Reference  string          `json:"reference"`
}

type generatePayload struct {
	Format   string            `json:"format"`
	Metadata map[string]string `json:"metadata"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/batches", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{batchID}", h.handleGet)
		r.Get("/{batchID}/files", h.handleListFiles)
		r.Post("/{batchID}/files", h.handleGenerateFile)
		r.Get("/{batchID}/advice", h.handleAdvice)
	})
	r.Get("/files/{fileID}/download", h.handleDownload)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	batches, err := h.service.ListBatches(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to list batches", reqID)
		return
	}
	api.Success(w, batches, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload batchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}
	if err := validateBatchPayload(payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation", err.Error(), reqID)
		return
	}

	payments := make([]disbursement.BatchPayment, 0, len(payload.Payments))
	for _, p := range payload.Payments {
		currency := p.Currency
		if currency == "" {
			currency = "USD"
		}
		payments = append(payments, disbursement.BatchPayment{
			EmployeeID: p.EmployeeID,
			Amount:     p.Amount,
			Currency:   currency,
			Reference:  p.Reference,
		})
	}

	id, err := h.service.CreateBatch(r.Context(), disbursement.Batch{
		Description:   payload.Description,
		EffectiveDate: payload.EffectiveDate,
	}, payments)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to create batch", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	batch, err := h.service.GetBatch(r.Context(), chi.URLParam(r, "batchID"))
	if errors.Is(err, disbursement.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "batch not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to load batch", reqID)
		return
	}
	api.Success(w, batch, reqID)
}

func (h *Handler) handleListFiles(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	files, err := h.service.ListBankFiles(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to list files", reqID)
		return
	}
	api.Success(w, files, reqID)
}

func (h *Handler) handleGenerateFile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}
	format, err := bankfile.ParseFormat(payload.Format)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "unsupported_format", err.Error(), reqID)
		return
	}

	file, err := h.service.GenerateFile(r.Context(), chi.URLParam(r, "batchID"), format, payload.Metadata)
	if err != nil {
		writeGenerateError(w, err, reqID)
		return
	}
	api.Created(w, file, reqID)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	file, err := h.service.GetBankFile(r.Context(), chi.URLParam(r, "fileID"))
	if errors.Is(err, disbursement.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "file not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to load file", reqID)
		return
	}

	w.Header().Set("Content-Type", bankfile.Format(file.Format).ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	_, _ = w.Write([]byte(file.Content))
}

func (h *Handler) handleAdvice(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	batchID := chi.URLParam(r, "batchID")
	pdf, err := h.service.RemittanceAdvicePDF(r.Context(), batchID)
	if errors.Is(err, disbursement.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "batch not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to render advice", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "advice_"+batchID+".pdf"))
	_, _ = w.Write(pdf)
}

func writeGenerateError(w http.ResponseWriter, err error, reqID string) {
	var unsupported *bankfile.UnsupportedFormatError
	var encoding *bankfile.EncodingError
	switch {
	case errors.Is(err, disbursement.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "batch not found", reqID)
	case errors.As(err, &unsupported):
		api.Fail(w, http.StatusBadRequest, "unsupported_format", err.Error(), reqID)
	case errors.As(err, &encoding):
		api.Fail(w, http.StatusUnprocessableEntity, "encoding", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to generate file", reqID)
	}
}

func validateBatchPayload(payload batchPayload) error {
	if len(payload.Payments) == 0 {
		return errors.New("payments must not be empty")
	}
	if _, err := time.Parse("2006-01-02", payload.EffectiveDate); err != nil {
		return errors.New("effectiveDate must be an ISO date (YYYY-MM-DD)")
	}
	for i, p := range payload.Payments {
		if strings.TrimSpace(p.EmployeeID) == "" {
			return fmt.Errorf("payment %d: employeeId is required", i)
		}
		if p.Amount.IsNegative() {
			return fmt.Errorf("payment %d: amount must not be negative", i)
		}
	}
	return nil
}
