package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout формат календарной даты YYYY-MM-DD
const dateLayout = "2006-01-02"

// DateString календарный день без времени и таймзоны ("2025-03-10").
// Используется везде, где бизнес-логика оперирует днями, а не моментами:
// день не имеет таймзоны, поэтому хранить его как time.Time с полуночью UTC
// опасно (сдвиг на день при отображении). Конвертация в time.Time выполняется
// только внутри этого типа с явной привязкой к локальной полуночи.
type DateString string

// NewDateString создает DateString из time.Time (берёт только дату)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит строку формата YYYY-MM-DD
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date string format: %v", err)
	}
	return DateString(s), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	_, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return fmt.Errorf("invalid date string format: %v", err)
	}
	return nil
}

// Time возвращает локальную полночь этого дня.
// Единственная точка конвертации день -> момент времени.
func (d DateString) Time() (time.Time, error) {
	return time.ParseInLocation(dateLayout, string(d), time.Local)
}

// IsBefore проверяет, что дата раньше other
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsPast проверяет, что день уже прошёл относительно now (сравнение по дням)
func (d DateString) IsPast(now time.Time) bool {
	return string(d) < now.Format(dateLayout)
}

// AddDays возвращает дату через n дней
func (d DateString) AddDays(n int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, n)), nil
}

// Format форматирует дату по указанному layout (для человекочитаемых описаний)
func (d DateString) Format(layout string) string {
	t, err := d.Time()
	if err != nil {
		return string(d)
	}
	return t.Format(layout)
}

// Value реализует driver.Valuer для записи в БД
func (d DateString) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Колонка типа date приходит от драйвера как time.Time
func (d *DateString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		parsed, err := NewDateStringFromString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := NewDateStringFromString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateString", value)
	}
}
