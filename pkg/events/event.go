package events

import "time"

// Event defines the contract for all funnel analytics events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "LEAD_SUBMITTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Funnel event codes. These mirror what the production trackers consumed;
// here they only feed the logging consumer.
const (
	TypeFunnelStarted          = "FUNNEL_STARTED"
	TypeQuestionAnswered       = "QUESTION_ANSWERED"
	TypeQuestionnaireCompleted = "QUESTIONNAIRE_COMPLETED"
	TypeProfileCompleted       = "PROFILE_COMPLETED"
	TypeSupplierToggled        = "SUPPLIER_TOGGLED"
	TypeLeadSubmitted          = "LEAD_SUBMITTED"
	TypeLeadSubmissionFailed   = "LEAD_SUBMISSION_FAILED"
)

// BaseEvent is the default Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New builds a BaseEvent stamped now.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}
