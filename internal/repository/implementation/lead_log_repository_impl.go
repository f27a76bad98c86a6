// Implementation of ILeadLogRepository
package implementation

import (
	"context"

	"gorm.io/gorm"

	"ux-matching-be/internal/model"
	"ux-matching-be/internal/repository/contract"
)

type LeadLogRepositoryImpl struct {
	db *gorm.DB
}

func NewLeadLogRepository(db *gorm.DB) contract.ILeadLogRepository {
	return &LeadLogRepositoryImpl{db: db}
}

func (r *LeadLogRepositoryImpl) Create(ctx context.Context, log *model.LeadLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *LeadLogRepositoryImpl) ListBySession(ctx context.Context, sessionId string) ([]model.LeadLog, error) {
	var logs []model.LeadLog
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
