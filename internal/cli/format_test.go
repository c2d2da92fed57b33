package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucventura/clinicday/internal/layout"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "JSON", "tsv", "csv"} {
		_, err := parseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := parseFormat("xml")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	got, err := parseClock("2026-03-16", "09:30")
	require.NoError(t, err)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 16, got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, err = parseClock("2026-03-16", "9am")
	assert.Error(t, err)

	_, err = parseClock("2026-03-16", "25:00")
	assert.Error(t, err)
}

func TestOffsetClock(t *testing.T) {
	assert.Equal(t, "00:00", offsetClock(0))
	assert.Equal(t, "09:05", offsetClock(9*60+5))
	assert.Equal(t, "17:30", offsetClock(17*60+30))
}

func TestGetEffectiveDate(t *testing.T) {
	dateFlag = ""
	defer func() { dateFlag = "" }()

	got, err := getEffectiveDate()
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), got)

	dateFlag = "2026-03-16"
	got, err = getEffectiveDate()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", got)

	dateFlag = "03/16/2026"
	_, err = getEffectiveDate()
	assert.Error(t, err)
}

func TestFormatEventColumn(t *testing.T) {
	single := layout.PositionedEvent{Column: 0, TotalColumns: 1}
	assert.Equal(t, "", formatEventColumn(single))

	second := layout.PositionedEvent{Column: 1, TotalColumns: 3}
	assert.Equal(t, " [2/3]", formatEventColumn(second))
}
