package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidDays      = errors.New("invalid days")
	ErrFetchCampaigns   = errors.New("error fetching campaigns from database")
	ErrFetchMetrics     = errors.New("error fetching metrics from database")
)

// CampaignNotFoundError indica que a campanha pedida não existe
type CampaignNotFoundError struct {
	CampaignID int64
}

func (e *CampaignNotFoundError) Error() string {
	return fmt.Sprintf("Campaign with ID %d not found", e.CampaignID)
}

func (e *CampaignNotFoundError) Unwrap() error {
	return ErrCampaignNotFound
}

// ReportingError é um erro com contexto adicional para consultas
type ReportingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportingError) Unwrap() error {
	return e.Err
}

func NewReportingError(err error, code string, details string) *ReportingError {
	return &ReportingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
