package employeehandler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

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

type employeePayload struct {
	Name          string `json:"name"`
	BankName      string `json:"bankName"`
	RoutingNumber string `json:"routingNumber"`
	AccountNumber string `json:"accountNumber"`
	IBAN          string `json:"iban"`
	SwiftCode     string `json:"swiftCode"`
	Currency      string `json:"currency"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.service.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to list employees", reqID)
		return
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		api.Fail(w, http.StatusBadRequest, "validation", "name is required", reqID)
		return
	}
	if payload.Currency == "" {
		payload.Currency = "USD"
	}

	id, err := h.service.CreateEmployee(r.Context(), disbursement.Employee{
		Name:          payload.Name,
		BankName:      payload.BankName,
		RoutingNumber: payload.RoutingNumber,
		AccountNumber: payload.AccountNumber,
		IBAN:          payload.IBAN,
		SwiftCode:     payload.SwiftCode,
		Currency:      payload.Currency,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to create employee", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}
