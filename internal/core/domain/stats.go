package domain

import (
	"math"
	"sort"
)

// StreakThreshold is the daily percent a day must exceed to count toward
// a streak. Strictly greater than: a 40% day does not qualify.
const StreakThreshold = 40

// EmptyDayPolicy controls how a day with zero logged records enters a
// percent series. Both conventions are legitimate; every call site must
// declare which one it wants.
type EmptyDayPolicy int

const (
	// EmptyDayZeroFill coerces an empty day to 0%. Used for personal
	// progress, the leaderboard and habit stats.
	EmptyDayZeroFill EmptyDayPolicy = iota

	// EmptyDaySkip drops the day from the series entirely, shrinking the
	// denominator of any average computed over it. Used by the comparison
	// trend, where a user who never logged on a day should not flatline.
	EmptyDaySkip
)

// HabitStat is the all-time completion rate for one habit.
type HabitStat struct {
	HabitName string `json:"habit_name"`
	Percent   int    `json:"percent"`
}

// RankedEntry is one leaderboard row.
type RankedEntry struct {
	UserName string `json:"user_name"`
	Percent  int    `json:"percent"`
	Streak   int    `json:"streak"`
}

// WeeklySummary bundles the per-day percents of a trailing window with the
// figures derived from them.
type WeeklySummary struct {
	Days        []DayKey `json:"days"`
	Percents    []int    `json:"percents"`
	Average     int      `json:"average"`
	BestDay     int      `json:"best_day"`
	PerfectDays int      `json:"perfect_days"`
}

// ComparisonEntry is one user's line on the comparison chart, with the
// stat card shown next to it.
type ComparisonEntry struct {
	UserName string `json:"user_name"`
	Trend    []int  `json:"trend"`
	Average  int    `json:"average"`
	BestDay  int    `json:"best_day"`
	Streak   int    `json:"streak"`
}

// GroupByDay buckets records by their day key. Every key in days is
// present in the result, defaulting to an empty bucket, so downstream
// lookups never miss. Records outside the window are dropped.
func GroupByDay(records []*CompletionRecord, days []DayKey) map[DayKey][]*CompletionRecord {
	grouped := make(map[DayKey][]*CompletionRecord, len(days))
	for _, d := range days {
		grouped[d] = []*CompletionRecord{}
	}
	for _, r := range records {
		if _, ok := grouped[r.Date]; ok {
			grouped[r.Date] = append(grouped[r.Date], r)
		}
	}
	return grouped
}

// DailyPercent is completed/total for one day's records, rounded half away
// from zero. An empty day is 0.
func DailyPercent(records []*CompletionRecord) int {
	if len(records) == 0 {
		return 0
	}
	done := 0
	for _, r := range records {
		if r.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(records)) * 100))
}

// DailyPercents turns grouped records into a percent series over the given
// days, applying the declared empty-day policy.
func DailyPercents(grouped map[DayKey][]*CompletionRecord, days []DayKey, policy EmptyDayPolicy) []int {
	percents := make([]int, 0, len(days))
	for _, d := range days {
		dayRecords := grouped[d]
		if len(dayRecords) == 0 && policy == EmptyDaySkip {
			continue
		}
		percents = append(percents, DailyPercent(dayRecords))
	}
	return percents
}

// WeeklyAverage is the rounded arithmetic mean of a percent series; 0 for
// an empty series.
func WeeklyAverage(percents []int) int {
	if len(percents) == 0 {
		return 0
	}
	sum := 0
	for _, p := range percents {
		sum += p
	}
	return int(math.Round(float64(sum) / float64(len(percents))))
}

// BestDay is the maximum of the series; 0 for an empty series.
func BestDay(percents []int) int {
	best := 0
	for _, p := range percents {
		if p > best {
			best = p
		}
	}
	return best
}

// PerfectDayCount counts days at exactly 100%.
func PerfectDayCount(percents []int) int {
	count := 0
	for _, p := range percents {
		if p == 100 {
			count++
		}
	}
	return count
}

// RunningTrend smooths a series for the comparison chart: element i is the
// rounded mean of percents[0..i]. Cumulative, not a sliding window, so
// later points are increasingly damped.
func RunningTrend(percents []int) []int {
	trend := make([]int, len(percents))
	sum := 0
	for i, p := range percents {
		sum += p
		trend[i] = int(math.Round(float64(sum) / float64(i+1)))
	}
	return trend
}

// QualifiesForStreak reports whether a day's percent counts toward a
// streak.
func QualifiesForStreak(percent int) bool {
	return percent > StreakThreshold
}

// RecomputeStreak scans a chronological percent series backwards, counting
// consecutive qualifying days ending at the most recent one. It is the
// fallback for users with no persisted streak state and uses the same
// qualifying rule as the persisted transition.
func RecomputeStreak(percents []int) int {
	streak := 0
	for i := len(percents) - 1; i >= 0; i-- {
		if !QualifiesForStreak(percents[i]) {
			break
		}
		streak++
	}
	return streak
}

// HabitStats computes all-time completion rates, one entry per habit in
// input order. A habit with no records reports 0, not a missing entry.
func HabitStats(habits []*Habit, records []*CompletionRecord) []HabitStat {
	totals := make(map[string]int, len(habits))
	done := make(map[string]int, len(habits))
	for _, r := range records {
		totals[r.Habit]++
		if r.Completed {
			done[r.Habit]++
		}
	}

	stats := make([]HabitStat, 0, len(habits))
	for _, h := range habits {
		percent := 0
		if totals[h.Name] > 0 {
			percent = int(math.Round(float64(done[h.Name]) / float64(totals[h.Name]) * 100))
		}
		stats = append(stats, HabitStat{HabitName: h.Name, Percent: percent})
	}
	return stats
}

// Rank orders leaderboard entries by percent descending, ties broken by
// streak descending. The sort is stable so equal entries keep their input
// order across re-renders.
func Rank(entries []RankedEntry) []RankedEntry {
	ranked := make([]RankedEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Percent != ranked[j].Percent {
			return ranked[i].Percent > ranked[j].Percent
		}
		return ranked[i].Streak > ranked[j].Streak
	})
	return ranked
}
