package usecase

import (
	"context"
	"log"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/queue"
)

type LeadEventProducer interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}

// CaptureLeadUseCase gestiona la entrada del formulario público:
// valida, persiste y publica el evento para notificar al equipo.
type CaptureLeadUseCase struct {
	Repo     entity.LeadRepository
	Producer LeadEventProducer // opcional: sin broker, solo se persiste
}

func NewCaptureLeadUseCase(repo entity.LeadRepository, producer LeadEventProducer) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Repo: repo, Producer: producer}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	lead, err := ValidateCreateLead(input)
	if err != nil {
		return nil, err
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	// La notificación es best-effort: un broker caído nunca tumba el
	// formulario de contacto.
	if uc.Producer != nil {
		payload := queue.LeadCapturedPayload{
			LeadID: lead.ID,
			Type:   string(lead.Type),
			Name:   lead.Name,
			Email:  lead.Email,
		}
		if lead.Phone != nil {
			payload.Phone = *lead.Phone
		}
		if lead.Message != nil {
			payload.Message = *lead.Message
		}
		if err := uc.Producer.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("⚠️ No se pudo publicar lead.captured para %s: %v", lead.ID, err)
		}
	}

	return lead, nil
}
