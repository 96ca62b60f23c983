package domain

import "time"

// AuditAction вид действия в журнале активности
type AuditAction string

const (
	ActionCreate AuditAction = "CREATE"
	ActionUpdate AuditAction = "UPDATE"
	ActionDelete AuditAction = "DELETE"
)

// IsValid returns true if the action is one of the known values
func (a AuditAction) IsValid() bool {
	return a == ActionCreate || a == ActionUpdate || a == ActionDelete
}

// AuditEntry одна запись append-only журнала активности:
// кто, что и с какой сущностью сделал. Записи никогда не изменяются и не удаляются.
type AuditEntry struct {
	ID               int64
	UserID           int64
	Action           AuditAction
	TargetCollection string
	TargetID         string
	Description      string

	// Denormalized actor data for list views
	UserName  string
	UserEmail string

	CreatedAt time.Time
}

// AuditFilter фильтр для выборки журнала активности
type AuditFilter struct {
	UserID   *int64       // Фильтр по пользователю (опционально)
	Action   *AuditAction // Фильтр по виду действия (опционально)
	DateFrom *time.Time   // Начало периода (опционально)
	DateTo   *time.Time   // Конец периода (опционально)
	Limit    int          // 0 = без ограничения
}
