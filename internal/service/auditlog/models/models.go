package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// Request модели

// ListAuditRequest запрос на выборку журнала активности
type ListAuditRequest struct {
	UserID   *int64  `json:"userId,omitempty"`
	Action   *string `json:"action,omitempty"`   // CREATE | UPDATE | DELETE
	DateFrom *string `json:"dateFrom,omitempty"` // YYYY-MM-DD
	DateTo   *string `json:"dateTo,omitempty"`   // YYYY-MM-DD
	Limit    int     `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр.
// DateTo включает весь указанный день.
func (r *ListAuditRequest) ToDomainFilter() (domain.AuditFilter, error) {
	filter := domain.AuditFilter{
		UserID: r.UserID,
		Limit:  r.Limit,
	}

	if r.Action != nil {
		action := domain.AuditAction(*r.Action)
		if !action.IsValid() {
			return filter, fmt.Errorf("invalid action %q", *r.Action)
		}
		filter.Action = &action
	}

	if r.DateFrom != nil {
		from, err := time.ParseInLocation(domain.DateFormat, *r.DateFrom, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid dateFrom: %v", err)
		}
		filter.DateFrom = &from
	}

	if r.DateTo != nil {
		to, err := time.ParseInLocation(domain.DateFormat, *r.DateTo, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid dateTo: %v", err)
		}
		endOfDay := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.DateTo = &endOfDay
	}

	return filter, nil
}

// Response модели

// AuditEntryResponse ответ с записью журнала активности
type AuditEntryResponse struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"userId"`
	UserName         string `json:"userName"`
	UserEmail        string `json:"userEmail"`
	Action           string `json:"action"`
	TargetCollection string `json:"targetCollection,omitempty"`
	TargetID         string `json:"targetId,omitempty"`
	Description      string `json:"description"`
	CreatedAt        string `json:"createdAt"`
}

// AuditListResponse ответ со списком записей журнала
type AuditListResponse struct {
	Entries []*AuditEntryResponse `json:"entries"`
	Total   int                   `json:"total"`
}

// FromDomainEntry конвертирует domain модель в response
func FromDomainEntry(e *domain.AuditEntry) *AuditEntryResponse {
	return &AuditEntryResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		UserName:         e.UserName,
		UserEmail:        e.UserEmail,
		Action:           string(e.Action),
		TargetCollection: e.TargetCollection,
		TargetID:         e.TargetID,
		Description:      e.Description,
		CreatedAt:        e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainEntryList конвертирует список domain моделей в response
func FromDomainEntryList(entries []*domain.AuditEntry) *AuditListResponse {
	result := make([]*AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, FromDomainEntry(e))
	}
	return &AuditListResponse{Entries: result, Total: len(result)}
}
