// Package api - HTTP handler for the upgrade engine
// This handler wraps the engine - it contains NO pricing logic.
// All logic is delegated to core packages.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ticket-upgrade/core/engine"
	"ticket-upgrade/core/types"
	"ticket-upgrade/internal/errors"
)

// Handler handles upgrade-engine requests
type Handler struct {
	engine  *engine.Engine
	version string

	// Defaults applied when query parameters are omitted
	defaultHorizonDays  int
	defaultCalendarDays int
}

// NewHandler creates a new handler over an engine
func NewHandler(eng *engine.Engine, version string) *Handler {
	return &Handler{
		engine:              eng,
		version:             version,
		defaultHorizonDays:  30,
		defaultCalendarDays: 90,
	}
}

// HandleQuote handles POST /quote
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	meta, start := h.newMetadata()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, meta.RequestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	ticketType, tier, err := parseEnums(req.TicketType, req.Tier)
	if err != nil {
		h.writeError(w, meta.RequestID, "INPUT_ERROR", err.Error(), http.StatusBadRequest)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		h.writeError(w, meta.RequestID, "INPUT_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.engine.Quote(ticketType, tier, date)
	if err != nil {
		// Not-offered is a business outcome, not a server fault
		h.writeError(w, meta.RequestID, string(errors.TypeNotOffered), err.Error(), http.StatusUnprocessableEntity)
		return
	}

	h.writeJSON(w, QuoteResponse{Quote: quote, Metadata: h.finish(meta, start)}, http.StatusOK)
}

// HandleValidate handles POST /validate
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	meta, start := h.newMetadata()

	req, err := h.decodeSelection(r)
	if err != nil {
		h.writeError(w, meta.RequestID, "INPUT_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	result := h.engine.Validate(req)
	h.writeJSON(w, ValidateResponse{Result: result, Metadata: h.finish(meta, start)}, http.StatusOK)
}

// HandleSelect handles POST /select
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	meta, start := h.newMetadata()

	req, err := h.decodeSelection(r)
	if err != nil {
		h.writeError(w, meta.RequestID, "INPUT_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.engine.ProcessSelection(req)
	if err != nil {
		h.writeError(w, meta.RequestID, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, SelectResponse{Outcome: outcome, Metadata: h.finish(meta, start)}, http.StatusOK)
}

// HandleComparison handles GET /comparison
func (h *Handler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	meta, start := h.newMetadata()

	ticketType, err := types.ParseTicketType(r.URL.Query().Get("ticket_type"))
	if err != nil {
		h.writeError(w, meta.RequestID, "INPUT_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	// Default to a week out, matching the selection workflow's preview
	date := h.engine.Calendar().Today().AddDate(0, 0, 7)
	if s := r.URL.Query().Get("date"); s != "" {
		if date, err = parseDate(s); err != nil {
			h.writeError(w, meta.RequestID, "INPUT_ERROR", err.Error(), http.StatusBadRequest)
			return
		}
	}

	comparison := h.engine.Compare(ticketType, date)
	h.writeJSON(w, ComparisonResponse{Comparison: comparison, Metadata: h.finish(meta, start)}, http.StatusOK)
}

// HandleBestDates handles GET /best-dates
func (h *Handler) HandleBestDates(w http.ResponseWriter, r *http.Request) {
	meta, start := h.newMetadata()

	ticketType, tier, err := parseEnums(r.URL.Query().Get("ticket_type"), r.URL.Query().Get("upgrade_tier"))
	if err != nil {
		h.writeError(w, meta.RequestID, "INPUT_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	horizon := h.defaultHorizonDays
	if s := r.URL.Query().Get("horizon_days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.writeError(w, meta.RequestID, "INPUT_ERROR", "horizon_days must be a positive integer", http.StatusBadRequest)
			return
		}
		horizon = n
	}

	deals := h.engine.BestDates(ticketType, tier, horizon)
	if deals == nil {
		deals = []types.DealDate{}
	}
	h.writeJSON(w, BestDatesResponse{Deals: deals, Metadata: h.finish(meta, start)}, http.StatusOK)
}

// HandleCalendar handles GET /calendar
func (h *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	meta, start := h.newMetadata()

	ticketType, err := types.ParseTicketType(r.URL.Query().Get("ticket_type"))
	if err != nil {
		h.writeError(w, meta.RequestID, "INPUT_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	days := h.defaultCalendarDays
	if s := r.URL.Query().Get("days_ahead"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.writeError(w, meta.RequestID, "INPUT_ERROR", "days_ahead must be a positive integer", http.StatusBadRequest)
			return
		}
		days = n
	}

	cal := h.engine.AvailabilityCalendar(ticketType, days)
	h.writeJSON(w, CalendarResponse{Calendar: cal, Metadata: h.finish(meta, start)}, http.StatusOK)
}

// decodeSelection parses and converts a wire selection payload
func (h *Handler) decodeSelection(r *http.Request) (types.SelectionRequest, error) {
	var payload SelectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return types.SelectionRequest{}, errors.Wrap(errors.TypeInput, "malformed request body", err)
	}

	ticketType, tier, err := parseEnums(payload.TicketType, payload.Tier)
	if err != nil {
		return types.SelectionRequest{}, err
	}
	date, err := parseDate(payload.SelectedDate)
	if err != nil {
		return types.SelectionRequest{}, err
	}

	originalPrice := decimal.Zero
	if payload.OriginalPrice != "" {
		originalPrice, err = decimal.NewFromString(payload.OriginalPrice)
		if err != nil {
			return types.SelectionRequest{}, errors.Newf(errors.TypeInput, "invalid original_price %q", payload.OriginalPrice)
		}
	}

	return types.SelectionRequest{
		TicketType:      ticketType,
		Tier:            tier,
		SelectedDate:    date,
		OriginalPrice:   originalPrice,
		CustomerContext: payload.CustomerContext,
	}, nil
}

func parseEnums(rawType, rawTier string) (types.TicketType, types.UpgradeTier, error) {
	ticketType, err := types.ParseTicketType(rawType)
	if err != nil {
		return "", "", err
	}
	tier, err := types.ParseUpgradeTier(rawTier)
	if err != nil {
		return "", "", err
	}
	return ticketType, tier, nil
}

func (h *Handler) newMetadata() (ResponseMetadata, time.Time) {
	now := time.Now()
	return ResponseMetadata{
		RequestID: "req-" + uuid.NewString(),
		Timestamp: now.UTC(),
		Version:   h.version,
	}, now
}

func (h *Handler) finish(meta ResponseMetadata, start time.Time) ResponseMetadata {
	meta.DurationMs = time.Since(start).Milliseconds()
	return meta
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	h.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"request_id": requestID,
			"code":       code,
			"message":    message,
		},
	}, status)
}
