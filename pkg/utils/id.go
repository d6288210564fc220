package utils

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	executionIDSize = 12

	// timestampIDLayout é yyyyMMddHHmmss, com resolução de segundos
	timestampIDLayout = "20060102150405"
)

// NewExecutionID gera o identificador que agrupa as campanhas de uma execução de plano
func NewExecutionID() (string, error) {
	return gonanoid.Generate(idAlphabet, executionIDSize)
}

// TimestampID formata o instante em UTC para compor ids externos simulados
func TimestampID(at time.Time) string {
	return at.UTC().Format(timestampIDLayout)
}
