package retry

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configura as tentativas com backoff exponencial
type Options struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultOptions espelha a política usada para chamadas externas: 3 novas tentativas, 1s inicial, dobrando até 60s
var DefaultOptions = Options{
	MaxRetries:   3,
	InitialDelay: time.Second,
	MaxDelay:     60 * time.Second,
	Multiplier:   2,
}

// WithBackoff executa fn até obter sucesso ou esgotar as tentativas.
// O último erro é retornado quando todas as tentativas falham.
func WithBackoff(ctx context.Context, opts Options, operation string, fn func(ctx context.Context) error) error {
	delay := opts.InitialDelay
	var err error

	for attempt := 0; attempt <= opts.MaxRetries; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		if attempt == opts.MaxRetries {
			break
		}

		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"attempt":   attempt + 1,
			"delay":     delay.String(),
			"error":     err.Error(),
		}).Warn("Falha na operação, tentando novamente")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * opts.Multiplier)
		if opts.MaxDelay > 0 && delay > opts.MaxDelay {
			delay = opts.MaxDelay
		}
	}

	logrus.WithFields(logrus.Fields{
		"operation": operation,
		"attempts":  opts.MaxRetries + 1,
	}).Error("Operação falhou após todas as tentativas")

	return err
}
