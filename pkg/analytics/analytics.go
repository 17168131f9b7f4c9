// Package analytics derives search-progress statistics from the job
// collection. Everything here is a pure function over a snapshot,
// parameterized by "now" — nothing is cached or stored.
package analytics

import (
	"strconv"
	"time"

	"github.com/entrhq/jobflow/pkg/types"
)

// Trend classifies a windowed comparison of a statistic.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// windowDays is the size of the recent and previous comparison windows.
const windowDays = 30

// Stat is a displayed count with its 30-day trend.
type Stat struct {
	Value int
	Trend Trend
}

// Snapshot is the full derived view over the job collection.
//
// Applied.Value is the all-time application-origin count, but its trend
// compares the count of jobs dated in the recent window against the
// previous window. Interviews and Offers compare their all-time values
// against the previous window. That asymmetry matches the product's
// dashboard and is kept deliberately.
type Snapshot struct {
	Applied    Stat
	Interviews Stat
	Offers     Stat
	Rejected   int
	Accepted   int
}

// DayCount is one day of the application-activity series.
type DayCount struct {
	Date  string // display label, e.g. "Jan 2"
	Count int
}

// Compute derives the statistics snapshot from jobs as of now.
func Compute(jobs []types.Job, now time.Time) Snapshot {
	windowStart := now.Add(-windowDays * 24 * time.Hour)
	prevStart := now.Add(-2 * windowDays * 24 * time.Hour)

	var recentCount int
	var previous []types.Job
	for _, job := range jobs {
		date, err := time.Parse(types.DateLayout, job.DateApplied)
		if err != nil {
			// Malformed dates fall out of both windows.
			continue
		}
		if !date.Before(windowStart) && !date.After(now) {
			recentCount++
		} else if !date.Before(prevStart) && date.Before(windowStart) {
			previous = append(previous, job)
		}
	}

	applied := countWhere(jobs, isApplication)
	interviews := countWhere(jobs, hasStatus(types.StatusInterview))
	offers := countWhere(jobs, isOffer)

	prevApplied := countWhere(previous, isApplication)
	prevInterviews := countWhere(previous, hasStatus(types.StatusInterview))
	prevOffers := countWhere(previous, isOffer)

	return Snapshot{
		Applied:    Stat{Value: applied, Trend: classify(recentCount, prevApplied)},
		Interviews: Stat{Value: interviews, Trend: classify(interviews, prevInterviews)},
		Offers:     Stat{Value: offers, Trend: classify(offers, prevOffers)},
		Rejected:   countWhere(jobs, hasStatus(types.StatusRejected)),
		Accepted:   countWhere(jobs, hasStatus(types.StatusAccepted)),
	}
}

// DailySeries emits one entry per calendar day for the last 30 days,
// oldest to newest, today inclusive. A job counts toward a day only when
// its DateApplied matches that exact date — this is an equality check,
// not a range.
func DailySeries(jobs []types.Job, now time.Time) []DayCount {
	series := make([]DayCount, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := now.Add(-time.Duration(i) * 24 * time.Hour).UTC()
		dateStr := day.Format(types.DateLayout)

		count := 0
		for _, job := range jobs {
			if job.DateApplied == dateStr {
				count++
			}
		}

		series = append(series, DayCount{Date: day.Format("Jan 2"), Count: count})
	}
	return series
}

// ConversionRate renders (interviews + offers) / total × 100 to one
// decimal place, where total is the size of the whole collection and
// offers are counted by status. Returns "0" for an empty collection
// rather than dividing by zero.
func ConversionRate(jobs []types.Job) string {
	total := len(jobs)
	if total == 0 {
		return "0"
	}
	interviews := countWhere(jobs, hasStatus(types.StatusInterview))
	offers := countWhere(jobs, hasStatus(types.StatusOffer))
	rate := float64(interviews+offers) / float64(total) * 100
	return strconv.FormatFloat(rate, 'f', 1, 64)
}

func classify(current, previous int) Trend {
	switch {
	case current > previous:
		return TrendUp
	case current < previous:
		return TrendDown
	default:
		return TrendNeutral
	}
}

func countWhere(jobs []types.Job, pred func(types.Job) bool) int {
	n := 0
	for _, job := range jobs {
		if pred(job) {
			n++
		}
	}
	return n
}

func isApplication(j types.Job) bool {
	return j.Origin == types.OriginApplication
}

// isOffer counts a job as an offer when either axis says so: offer
// status, or offer origin regardless of current status.
func isOffer(j types.Job) bool {
	return j.Status == types.StatusOffer || j.Origin == types.OriginOffer
}

func hasStatus(status types.JobStatus) func(types.Job) bool {
	return func(j types.Job) bool { return j.Status == status }
}
