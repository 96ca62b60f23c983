package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CondoService/pkg/types"
)

const monthFormat = "2006-01"

// Максимальный размер запрашиваемого диапазона, дней
const maxRangeDays = 62

// resolveRange вычисляет границы диапазона дат из запроса.
// Month имеет приоритет над явным диапазоном.
func resolveRange(req *Request) (types.DateString, types.DateString, error) {
	if req.Month != "" {
		monthStart, err := time.ParseInLocation(monthFormat, req.Month, time.Local)
		if err != nil {
			return "", "", fmt.Errorf("%w: invalid month format: %v", ErrInvalidInput, err)
		}
		from := types.NewDateString(monthStart)
		to := types.NewDateString(monthStart.AddDate(0, 1, -1))
		return from, to, nil
	}

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return "", "", fmt.Errorf("%w: month or date range is required", ErrInvalidInput)
	}
	if err := req.DateFrom.Validate(); err != nil {
		return "", "", fmt.Errorf("%w: invalid dateFrom: %v", ErrInvalidInput, err)
	}
	if err := req.DateTo.Validate(); err != nil {
		return "", "", fmt.Errorf("%w: invalid dateTo: %v", ErrInvalidInput, err)
	}
	if req.DateTo.IsBefore(req.DateFrom) {
		return "", "", fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidInput)
	}
	if maxTo, err := req.DateFrom.AddDays(maxRangeDays); err == nil && maxTo.IsBefore(req.DateTo) {
		return "", "", fmt.Errorf("%w: range exceeds %d days", ErrInvalidInput, maxRangeDays)
	}

	return req.DateFrom, req.DateTo, nil
}
