package planning

import (
	"errors"
	"fmt"

	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
)

var (
	ErrInvalidInput = domain.ErrInvalidPlan
	ErrNilInput     = errors.New("plan input is required")
)

// PlanGenerationError é a falha ao gerar um plano de mídia
type PlanGenerationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Message string
}

func (e *PlanGenerationError) Error() string {
	return fmt.Sprintf("Plan generation error: %s", e.Message)
}

func (e *PlanGenerationError) Unwrap() error {
	return e.Err
}

// NewPlanGenerationError classifica a causa: entrada inválida vira erro de validação, o resto erro interno
func NewPlanGenerationError(err error) *PlanGenerationError {
	code := apiErrors.ErrPlanGeneration
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNilInput) {
		code = apiErrors.ErrInvalidRequest
	}

	return &PlanGenerationError{
		Err:     err,
		Code:    code,
		Message: err.Error(),
	}
}
