package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseStudyPeriods_Range(t *testing.T) {
	periods, err := ParseStudyPeriods("01/09/2025 - 29/09/2025")
	require.NoError(t, err)
	require.Len(t, periods, 1)

	assert.Equal(t, mustDate(t, "01/09/2025"), periods[0].Start)
	assert.Equal(t, mustDate(t, "29/09/2025"), periods[0].End)
}

func TestParseStudyPeriods_SingleDate(t *testing.T) {
	periods, err := ParseStudyPeriods("14/10/2025")
	require.NoError(t, err)
	require.Len(t, periods, 1)

	assert.True(t, periods[0].IsSingleDate())
	assert.Equal(t, mustDate(t, "14/10/2025"), periods[0].Start)
}

func TestParseStudyPeriods_MultipleTokens(t *testing.T) {
	periods, err := ParseStudyPeriods("02/09/2025 - 30/09/2025\n14/10/2025\n21/10/2025 - 28/10/2025")
	require.NoError(t, err)
	require.Len(t, periods, 3)

	assert.Equal(t, mustDate(t, "02/09/2025"), periods[0].Start)
	assert.Equal(t, mustDate(t, "30/09/2025"), periods[0].End)
	assert.True(t, periods[1].IsSingleDate())
	assert.Equal(t, mustDate(t, "21/10/2025"), periods[2].Start)
}

func TestParseStudyPeriods_TrimsWhitespace(t *testing.T) {
	periods, err := ParseStudyPeriods("  01/09/2025 -  29/09/2025 \n\n 14/10/2025 ")
	require.NoError(t, err)
	require.Len(t, periods, 2)
}

func TestParseStudyPeriods_Empty(t *testing.T) {
	periods, err := ParseStudyPeriods("   ")
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestParseStudyPeriods_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "wrong date format", text: "2025/09/01-2025/09/10"},
		{name: "garbage token", text: "01/09/2025 - 29/09/2025\nnot a date"},
		{name: "start after end", text: "29/09/2025 - 01/09/2025"},
		{name: "too many dates", text: "01/09/2025 - 15/09/2025 - 29/09/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStudyPeriods(tt.text)
			require.ErrorIs(t, err, ErrMalformedStudyTime)
		})
	}
}

func TestParseStudyPeriods_ErrorNamesToken(t *testing.T) {
	_, err := ParseStudyPeriods("2025/09/01-2025/09/10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2025/09/01")
}

func TestFormatStudyPeriods_RoundTrip(t *testing.T) {
	original := []DateInterval{
		{Start: mustDate(t, "01/09/2025"), End: mustDate(t, "29/09/2025")},
		{Start: mustDate(t, "14/10/2025"), End: mustDate(t, "14/10/2025")},
		{Start: mustDate(t, "04/11/2025"), End: mustDate(t, "25/11/2025")},
	}

	parsed, err := ParseStudyPeriods(FormatStudyPeriods(original))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestDateInterval_Contains(t *testing.T) {
	iv := DateInterval{Start: mustDate(t, "01/09/2025"), End: mustDate(t, "15/09/2025")}

	assert.True(t, iv.Contains(mustDate(t, "01/09/2025")))
	assert.True(t, iv.Contains(mustDate(t, "15/09/2025")))
	assert.True(t, iv.Contains(mustDate(t, "08/09/2025")))
	assert.False(t, iv.Contains(mustDate(t, "31/08/2025")))
	assert.False(t, iv.Contains(mustDate(t, "16/09/2025")))
}

func TestDateInterval_Overlaps(t *testing.T) {
	a := DateInterval{Start: mustDate(t, "01/09/2025"), End: mustDate(t, "15/09/2025")}
	b := DateInterval{Start: mustDate(t, "15/09/2025"), End: mustDate(t, "30/09/2025")}
	c := DateInterval{Start: mustDate(t, "16/09/2025"), End: mustDate(t, "30/09/2025")}

	// Closed intervals: sharing a single boundary date is an overlap
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
	assert.False(t, c.Overlaps(a))
}

func TestDateInterval_Intersect(t *testing.T) {
	a := DateInterval{Start: mustDate(t, "01/09/2025"), End: mustDate(t, "15/09/2025")}
	b := DateInterval{Start: mustDate(t, "08/09/2025"), End: mustDate(t, "30/09/2025")}

	inter, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, mustDate(t, "08/09/2025"), inter.Start)
	assert.Equal(t, mustDate(t, "15/09/2025"), inter.End)

	c := DateInterval{Start: mustDate(t, "01/10/2025"), End: mustDate(t, "02/10/2025")}
	_, ok = a.Intersect(c)
	assert.False(t, ok)
}
