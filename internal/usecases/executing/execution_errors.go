package executing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrGenerateExecutionID = errors.New("error generating execution id")
	ErrNoCampaignCreators  = errors.New("no campaign creators configured")
)

// ExecutionError é um erro com contexto adicional para a execução de planos
type ExecutionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ExecutionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func NewExecutionError(err error, code string, details string) *ExecutionError {
	return &ExecutionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
