package elapsed

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	ref := at(2025, time.November, 30, 0, 0, 0)

	tests := []struct {
		name string
		ref  time.Time
		now  time.Time
		want Breakdown
	}{
		{"same instant", ref, ref, Breakdown{}},
		{"one day one second", ref, at(2025, time.December, 1, 0, 0, 1), Breakdown{Days: 1, Seconds: 1}},
		{"just before a month", ref, at(2025, time.December, 29, 23, 59, 59), Breakdown{Days: 29, Hours: 23, Minutes: 59, Seconds: 59}},
		{"exactly a month", ref, at(2025, time.December, 30, 0, 0, 0), Breakdown{Months: 1}},
		{"month end clamps", at(2025, time.January, 31, 0, 0, 0), at(2025, time.February, 28, 0, 0, 0), Breakdown{Months: 1}},
		{"leap february", at(2024, time.January, 31, 0, 0, 0), at(2024, time.February, 28, 12, 0, 0), Breakdown{Days: 28, Hours: 12}},
		{"year and change", ref, at(2026, time.December, 2, 3, 4, 5), Breakdown{Years: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5}},
		{"year not yet reached", at(2024, time.March, 15, 0, 0, 0), at(2025, time.March, 10, 0, 0, 0), Breakdown{Months: 11, Days: 23}},
		{"time of day borrow", at(2025, time.November, 30, 18, 0, 0), at(2025, time.December, 2, 6, 0, 0), Breakdown{Days: 1, Hours: 12}},
		{"now before reference", ref, at(2025, time.November, 1, 0, 0, 0), Breakdown{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Between(tt.ref, tt.now))
		})
	}
}

func TestBetweenSecondStepCarries(t *testing.T) {
	ref := at(2025, time.November, 30, 0, 0, 0)
	now := at(2025, time.November, 30, 0, 0, 0)
	prev := Between(ref, now)

	// Walk across a month boundary one second at a time around the carry points.
	checkpoints := []time.Time{
		at(2025, time.December, 1, 0, 0, 0),
		at(2025, time.December, 29, 23, 59, 0),
		at(2026, time.January, 29, 23, 59, 0),
	}
	for _, start := range checkpoints {
		now = start
		prev = Between(ref, now)
		for i := 0; i < 120; i++ {
			now = now.Add(time.Second)
			cur := Between(ref, now)

			if prev.Seconds < 59 {
				assert.Equal(t, prev.Seconds+1, cur.Seconds, "at %v", now)
				assert.Equal(t, prev.Minutes, cur.Minutes, "at %v", now)
			} else {
				assert.Equal(t, 0, cur.Seconds, "at %v", now)
			}
			for _, v := range []int{cur.Years, cur.Months, cur.Days, cur.Hours, cur.Minutes, cur.Seconds} {
				assert.GreaterOrEqual(t, v, 0)
			}
			prev = cur
		}
	}
}

func TestBetweenMonthCarry(t *testing.T) {
	ref := at(2025, time.November, 30, 0, 0, 0)

	before := Between(ref, at(2025, time.December, 29, 23, 59, 59))
	after := Between(ref, at(2025, time.December, 30, 0, 0, 0))

	assert.Equal(t, 0, before.Months)
	assert.Equal(t, 29, before.Days)
	assert.Equal(t, 1, after.Months)
	assert.Equal(t, 0, after.Days)
	assert.True(t, after.Hours == 0 && after.Minutes == 0 && after.Seconds == 0)
}

func TestTotalWholeDays(t *testing.T) {
	ref := at(2025, time.November, 30, 0, 0, 0)

	assert.Equal(t, 0, TotalWholeDays(ref, ref))
	assert.Equal(t, 1, TotalWholeDays(ref, at(2025, time.December, 1, 0, 0, 1)))
	assert.Equal(t, 31, TotalWholeDays(ref, at(2025, time.December, 31, 12, 0, 0)))
	assert.Equal(t, 0, TotalWholeDays(ref, at(2025, time.October, 1, 0, 0, 0)))

	evening := at(2025, time.November, 30, 18, 0, 0)
	assert.Equal(t, 0, TotalWholeDays(evening, at(2025, time.December, 1, 17, 59, 59)))
	assert.Equal(t, 1, TotalWholeDays(evening, at(2025, time.December, 1, 18, 0, 0)))
}

func TestTotalWholeDaysStepsOncePerDay(t *testing.T) {
	ref := at(2025, time.November, 30, 0, 0, 0)
	now := ref
	for i := 1; i <= 400; i++ {
		now = now.AddDate(0, 0, 1)
		assert.Equal(t, i, TotalWholeDays(ref, now))
		assert.Equal(t, i-1, TotalWholeDays(ref, now.Add(-time.Second)))
	}
}

func TestDaysCanDiverge(t *testing.T) {
	ref := at(2025, time.November, 30, 0, 0, 0)
	now := at(2026, time.January, 5, 10, 0, 0)

	b := Between(ref, now)
	assert.Equal(t, 1, b.Months)
	assert.Equal(t, 6, b.Days)
	assert.Equal(t, 36, TotalWholeDays(ref, now))
}

func TestBetweenAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	local := func(y int, m time.Month, d, hh, mm, ss int) time.Time {
		return time.Date(y, m, d, hh, mm, ss, 0, ny)
	}

	tests := []struct {
		name string
		ref  time.Time
		now  time.Time
		want Breakdown
		days int
	}{
		{"fall back late evening", local(2025, time.November, 1, 0, 0, 0), local(2025, time.November, 2, 23, 30, 0), Breakdown{Days: 1, Hours: 23, Minutes: 30}, 1},
		{"fall back last second", local(2025, time.November, 1, 0, 0, 0), local(2025, time.November, 2, 23, 59, 59), Breakdown{Days: 1, Hours: 23, Minutes: 59, Seconds: 59}, 1},
		{"fall back wall hour", local(2025, time.November, 1, 0, 0, 0), local(2025, time.November, 2, 22, 59, 59), Breakdown{Days: 1, Hours: 22, Minutes: 59, Seconds: 59}, 1},
		{"fall back rolls into days", local(2025, time.November, 1, 0, 0, 0), local(2025, time.November, 3, 0, 0, 0), Breakdown{Days: 2}, 2},
		{"spring forward wall hour", local(2026, time.March, 7, 0, 0, 0), local(2026, time.March, 8, 22, 59, 59), Breakdown{Days: 1, Hours: 22, Minutes: 59, Seconds: 59}, 1},
		{"spring forward next midnight", local(2026, time.March, 7, 0, 0, 0), local(2026, time.March, 9, 0, 0, 0), Breakdown{Days: 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Between(tt.ref, tt.now)
			assert.Equal(t, tt.want, got)
			assert.Less(t, got.Hours, 24)
			assert.Equal(t, tt.days, TotalWholeDays(tt.ref, tt.now))
		})
	}
}
