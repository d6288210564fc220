package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLiveIntegrationNotImplemented a integração real com as plataformas ainda não existe
	ErrLiveIntegrationNotImplemented = errors.New("live integration not implemented")
	// ErrMissingCreative o plano não tem o criativo exigido pela plataforma
	ErrMissingCreative = errors.New("missing required creative")
)

// PlatformServiceError representa uma falha ao criar campanha em uma plataforma
type PlatformServiceError struct {
	Platform Platform
	Message  string
	Err      error
}

func NewPlatformServiceError(platform Platform, message string, err error) *PlatformServiceError {
	return &PlatformServiceError{
		Platform: platform,
		Message:  message,
		Err:      err,
	}
}

func (e *PlatformServiceError) Error() string {
	return fmt.Sprintf("%s service error: %s", e.Platform, e.Message)
}

func (e *PlatformServiceError) Unwrap() error {
	return e.Err
}
