// Package types defines the core entities shared across the jobflow
// packages: tracked jobs, the résumé, settings, and chat messages.
package types

// JobStatus is the pipeline stage a tracked job is currently in.
type JobStatus string

const (
	StatusApplied   JobStatus = "Applied"   // StatusApplied indicates the application has been submitted.
	StatusInterview JobStatus = "Interview" // StatusInterview indicates an interview is scheduled or in progress.
	StatusOffer     JobStatus = "Offer"     // StatusOffer indicates an offer has been extended.
	StatusRejected  JobStatus = "Rejected"  // StatusRejected indicates the application was declined.
	StatusAccepted  JobStatus = "Accepted"  // StatusAccepted indicates an offer was accepted.
)

// JobOrigin records how a job entered the tracker. It is set at creation
// and never changed by status transitions; status and origin are
// independent axes (an offer-origin record may carry any status).
type JobOrigin string

const (
	OriginApplication JobOrigin = "application" // OriginApplication: the user applied for this job.
	OriginOffer       JobOrigin = "offer"       // OriginOffer: the job arrived as an unsolicited offer.
)

// DateLayout is the calendar-date encoding used by Job.DateApplied.
// Dates carry no time component.
const DateLayout = "2006-01-02"

// Job is one tracked application or received offer.
//
// CoverLetter and InterviewGuide hold generated artifacts verbatim; they
// are produced by the gen package and stored as-is.
type Job struct {
	ID             string    `json:"id"`
	Company        string    `json:"company" validate:"required"`
	Role           string    `json:"role" validate:"required"`
	Status         JobStatus `json:"status"`
	Salary         string    `json:"salary"`
	Location       string    `json:"location"`
	DateApplied    string    `json:"dateApplied"`
	Description    string    `json:"description"`
	CoverLetter    string    `json:"coverLetter"`
	InterviewGuide string    `json:"interviewGuide"`
	Origin         JobOrigin `json:"origin"`
}

// JobPatch is a partial update for a Job. Nil fields are left untouched.
// Origin is deliberately absent: it is immutable after creation.
type JobPatch struct {
	Company        *string
	Role           *string
	Status         *JobStatus
	Salary         *string
	Location       *string
	DateApplied    *string
	Description    *string
	CoverLetter    *string
	InterviewGuide *string
}

// Apply merges the patch into the job, field by field.
func (p *JobPatch) Apply(j *Job) {
	if p == nil {
		return
	}
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.Role != nil {
		j.Role = *p.Role
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.DateApplied != nil {
		j.DateApplied = *p.DateApplied
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.CoverLetter != nil {
		j.CoverLetter = *p.CoverLetter
	}
	if p.InterviewGuide != nil {
		j.InterviewGuide = *p.InterviewGuide
	}
}
