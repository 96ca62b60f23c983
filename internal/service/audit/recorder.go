package audit

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

const recordTimeout = 2 * time.Second

// Recorder пишет записи в журнал активности по принципу fire-and-forget:
// отказ журнала никогда не роняет основную операцию, ошибка только логируется.
type Recorder struct {
	repo   AuditRepository
	logger Logger
}

// NewRecorder создает новый рекордер журнала активности
func NewRecorder(repo AuditRepository, logger Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Record фиксирует действие пользователя. Запись делается в отдельном
// контексте, чтобы отмена запроса не потеряла уже совершенное действие.
func (r *Recorder) Record(ctx context.Context, userID int64, action domain.AuditAction, collection, targetID, description string) {
	entry := &domain.AuditEntry{
		UserID:           userID,
		Action:           action,
		TargetCollection: collection,
		TargetID:         targetID,
		Description:      description,
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := r.repo.Append(recordCtx, entry); err != nil {
		r.logger.Warn("audit.Record: failed to append entry (user=%d, action=%s, target=%s/%s): %v",
			userID, action, collection, targetID, err)
	}
}
