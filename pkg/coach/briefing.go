// Package coach implements the AI career-coach conversation: the
// briefing that grounds the assistant in the user's current search state,
// and the session state machine that carries the dialog.
package coach

import (
	"fmt"
	"strings"

	"github.com/entrhq/jobflow/pkg/analytics"
	"github.com/entrhq/jobflow/pkg/types"
)

// recentActivityLimit caps how many recently added jobs the briefing lists.
const recentActivityLimit = 5

// BuildBriefing renders the jobs and résumé into the structured framing
// text sent as the assistant's first turn on every call. Every block is
// always present; empty data gets an explicit marker instead of a
// missing section. The strategic directives are fixed product behavior
// and are included verbatim regardless of data shape.
func BuildBriefing(jobs []types.Job, resume types.Resume) string {
	var b strings.Builder

	b.WriteString(personaPrompt)
	b.WriteString("\n\n")

	b.WriteString("User Identity:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orDefault(resume.FullName, "User"))
	fmt.Fprintf(&b, "- Current Role: %s\n", latestEntry(resume.Experience))
	fmt.Fprintf(&b, "- Education: %s\n", latestEntry(resume.Education))
	fmt.Fprintf(&b, "- Top Skills: %s\n", orDefault(resume.Skills, "Not provided"))
	fmt.Fprintf(&b, "- Summary: %s\n\n", orDefault(resume.Summary, "Not provided"))

	interviews := 0
	offers := 0
	for _, job := range jobs {
		switch job.Status {
		case types.StatusInterview:
			interviews++
		case types.StatusOffer:
			offers++
		}
	}

	b.WriteString("Job Search Stats:\n")
	fmt.Fprintf(&b, "- Total Applications: %d\n", len(jobs))
	fmt.Fprintf(&b, "- Interviews: %d\n", interviews)
	fmt.Fprintf(&b, "- Offers: %d\n", offers)
	fmt.Fprintf(&b, "- Conversion Rate: %s%%\n\n", analytics.ConversionRate(jobs))

	b.WriteString("Recent Activity (Last 5):\n")
	b.WriteString(recentActivity(jobs))
	b.WriteString("\n\n")

	b.WriteString("Upcoming Interviews:\n")
	b.WriteString(upcomingInterviews(jobs))
	b.WriteString("\n\n")

	b.WriteString("Strategic Logic:\n")
	b.WriteString(DirectiveLowConversion)
	b.WriteString("\n")
	b.WriteString(DirectiveInterviewPrep)
	b.WriteString("\n")
	b.WriteString(DirectiveRejection)
	b.WriteString("\n")
	b.WriteString(DirectiveOffer)
	b.WriteString("\n\n")

	b.WriteString(tonePrompt)

	return b.String()
}

// recentActivity lists the most recently added jobs. The collection is
// newest first, so the head of the slice is the recent activity.
func recentActivity(jobs []types.Job) string {
	if len(jobs) == 0 {
		return "No recent applications"
	}

	limit := len(jobs)
	if limit > recentActivityLimit {
		limit = recentActivityLimit
	}

	lines := make([]string, 0, limit)
	for _, job := range jobs[:limit] {
		lines = append(lines, fmt.Sprintf("- %s at %s (%s)", job.Role, job.Company, job.Status))
	}
	return strings.Join(lines, "\n")
}

func upcomingInterviews(jobs []types.Job) string {
	var lines []string
	for _, job := range jobs {
		if job.Status == types.StatusInterview {
			lines = append(lines, fmt.Sprintf("- %s at %s", job.Role, job.Company))
		}
	}
	if len(lines) == 0 {
		return "None scheduled"
	}
	return strings.Join(lines, "\n")
}

// latestEntry renders the most recent entry of an ordered résumé list,
// which is the first element.
func latestEntry(sections []types.Section) string {
	if len(sections) == 0 {
		return "Not listed"
	}
	return fmt.Sprintf("%s (%s)", sections[0].Title, sections[0].Date)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
