package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", d.String())

	_, err = NewDateStringFromString("10.03.2025")
	assert.Error(t, err)

	_, err = NewDateStringFromString("2025-02-30")
	assert.Error(t, err)
}

func TestDateString_Ordering(t *testing.T) {
	a := DateString("2025-03-10")
	b := DateString("2025-03-11")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.False(t, a.IsBefore(a))
}

func TestDateString_IsPast(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	assert.True(t, DateString("2025-03-09").IsPast(now))
	// Сегодняшний день ещё не прошёл
	assert.False(t, DateString("2025-03-10").IsPast(now))
	assert.False(t, DateString("2025-03-11").IsPast(now))
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-03-10")

	next, err := d.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-03-11"), next)

	// Переход через границу месяца
	endOfMonth, err := DateString("2025-03-31").AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-04-01"), endOfMonth)

	_, err = DateString("not-a-date").AddDays(1)
	assert.Error(t, err)
}

func TestDateString_Scan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2025-03-10"), d)

	require.NoError(t, d.Scan("2025-04-01"))
	assert.Equal(t, DateString("2025-04-01"), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateString_Value(t *testing.T) {
	v, err := DateString("2025-03-10").Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", v)

	v, err = DateString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = DateString("bogus").Value()
	assert.Error(t, err)
}
