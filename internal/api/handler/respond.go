package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/media-planner-api/internal/usecases/reporting"
	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: failed to encode response")
	}
}

// writeInternalError registra o erro completo e só expõe o detalhe em desenvolvimento
func writeInternalError(w http.ResponseWriter, r *http.Request, code string, message string, err error) {
	log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error("http: request failed")

	var details any
	if err != nil && log.IsDevelopment() {
		details = err.Error()
	}

	apiErrors.WriteError(w, code, message, details)
}

// parseDays lê o parâmetro days, com padrão de 7 e limite de 1 a 90
func parseDays(r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("days"))
	if raw == "" {
		return reporting.DefaultDays, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < reporting.MinDays || days > reporting.MaxDays {
		return 0, false
	}

	return days, true
}

func writeInvalidDays(w http.ResponseWriter) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "days must be an integer between 1 and 90", nil)
}
