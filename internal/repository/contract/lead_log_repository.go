package contract

import (
	"context"

	"ux-matching-be/internal/model"
)

type ILeadLogRepository interface {
	Create(ctx context.Context, log *model.LeadLog) error
	ListBySession(ctx context.Context, sessionId string) ([]model.LeadLog, error)
}
