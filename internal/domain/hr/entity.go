package hr

import "time"

// Kind separates the three case registers that share the hr_cases table.
type Kind string

const (
	KindGrievance Kind = "grievance"
	KindMeeting   Kind = "meeting"
	KindTraining  Kind = "training"
)

func (k Kind) IsValid() bool {
	return k == KindGrievance || k == KindMeeting || k == KindTraining
}

// KindFromSegment maps the plural URL segment to a kind.
func KindFromSegment(segment string) (Kind, bool) {
	switch segment {
	case "grievances":
		return KindGrievance, true
	case "meetings":
		return KindMeeting, true
	case "trainings":
		return KindTraining, true
	}
	return "", false
}

type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusClosed     CaseStatus = "closed"
)

func (s CaseStatus) IsValid() bool {
	return s == CaseStatusOpen || s == CaseStatusInProgress || s == CaseStatusClosed
}

type Case struct {
	ID          string
	UserID      string
	Kind        Kind
	Title       string
	Description *string
	Date        time.Time
	Status      CaseStatus
	CreatedAt   time.Time
}
