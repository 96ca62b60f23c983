package list_audit

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-CondoService/internal/service/auditlog/models"
)

// parseQuery собирает фильтр журнала из query параметров
func parseQuery(query url.Values) (*models.ListAuditRequest, error) {
	req := &models.ListAuditRequest{}

	if raw := query.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid userId: %v", err)
		}
		req.UserID = &userID
	}

	if raw := query.Get("action"); raw != "" {
		req.Action = &raw
	}

	if raw := query.Get("dateFrom"); raw != "" {
		req.DateFrom = &raw
	}

	if raw := query.Get("dateTo"); raw != "" {
		req.DateTo = &raw
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("invalid limit: %s", raw)
		}
		req.Limit = limit
	}

	return req, nil
}
