package executing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/media-planner-api/internal/domain"
)

// PlatformResult é o resultado de uma plataforma: campanha criada ou causa da falha
type PlatformResult struct {
	Platform     domain.Platform
	CampaignType domain.CampaignType
	Campaign     *domain.CampaignResponse
	Err          error
}

func (r PlatformResult) Succeeded() bool {
	return r.Err == nil && r.Campaign != nil
}

// Outcome guarda um resultado por plataforma, na ordem de execução
type Outcome struct {
	ExecutionID string
	Results     []PlatformResult
}

// Created lista as campanhas criadas na ordem das plataformas
func (o *Outcome) Created() []*domain.CampaignResponse {
	created := make([]*domain.CampaignResponse, 0, len(o.Results))
	for _, r := range o.Results {
		if r.Succeeded() {
			created = append(created, r.Campaign)
		}
	}
	return created
}

// Errors lista as mensagens de falha na ordem das plataformas
func (o *Outcome) Errors() []string {
	errs := make([]string, 0)
	for _, r := range o.Results {
		if !r.Succeeded() {
			errs = append(errs, resultError(r))
		}
	}
	return errs
}

// TotalFailure é verdadeiro quando nenhuma plataforma criou campanha
func (o *Outcome) TotalFailure() bool {
	return len(o.Created()) == 0
}

// Message resume a execução para a resposta da API
func (o *Outcome) Message() string {
	message := fmt.Sprintf("Successfully created %d campaign(s)", len(o.Created()))

	errs := o.Errors()
	if len(errs) > 0 {
		message += fmt.Sprintf(". %d platform(s) failed: %s", len(errs), strings.Join(errs, ", "))
	}

	return message
}

func resultError(r PlatformResult) string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return fmt.Sprintf("Failed to create %s campaign: no campaign returned", r.Platform)
}
