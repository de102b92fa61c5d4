package models

type EmailStatus string

const (
	EmailStatusInvitation EmailStatus = "invitation"
	EmailStatusFeedback   EmailStatus = "feedback"
	EmailStatusRejection  EmailStatus = "rejection"
)

var EmailStatuses = []EmailStatus{
	EmailStatusInvitation,
	EmailStatusFeedback,
	EmailStatusRejection,
}

func (s EmailStatus) Valid() bool {
	for _, status := range EmailStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DisplayName is the option text shown in the email type select.
func (s EmailStatus) DisplayName() string {
	switch s {
	case EmailStatusInvitation:
		return "Interview Invitation"
	case EmailStatusFeedback:
		return "Feedback"
	case EmailStatusRejection:
		return "Rejection"
	}
	return string(s)
}

// EmailRequest keys are capitalised on the wire.
type EmailRequest struct {
	Email    string      `json:"Email" form:"email" validate:"required"`
	Name     string      `json:"Name" form:"name" validate:"required"`
	Position string      `json:"Position" form:"position" validate:"required"`
	Date     string      `json:"Date" form:"date" validate:"required"`
	Time     string      `json:"Time" form:"time" validate:"required"`
	Status   EmailStatus `json:"Status" form:"status" validate:"required,email_status"`
	Feedback string      `json:"Feedback" form:"feedback" validate:"required"`
}
