package events

// KindSessionStarted identifies session start.
const KindSessionStarted Kind = "session.started"

// SessionStarted marks a session entering the in-progress phase.
type SessionStarted struct {
	Base
	SessionID string
}

// NewSessionStarted creates a session started event.
func NewSessionStarted(sessionID string) SessionStarted {
	return SessionStarted{Base: NewBase(KindSessionStarted), SessionID: sessionID}
}

// KindSessionPlanAccepted identifies plan acceptance.
const KindSessionPlanAccepted Kind = "session.plan_accepted"

// SessionPlanAccepted marks successful plan validation.
type SessionPlanAccepted struct {
	Base
	TopicCount    int
	QuestionCount int
}

// NewSessionPlanAccepted creates a plan accepted event.
func NewSessionPlanAccepted(topicCount, questionCount int) SessionPlanAccepted {
	return SessionPlanAccepted{
		Base:          NewBase(KindSessionPlanAccepted),
		TopicCount:    topicCount,
		QuestionCount: questionCount,
	}
}

// KindSessionEnded identifies session termination.
const KindSessionEnded Kind = "session.ended"

// SessionEnded marks the session reaching its absorbing terminal phase.
type SessionEnded struct {
	Base
	Reason string
}

// NewSessionEnded creates a session ended event.
func NewSessionEnded(reason string) SessionEnded {
	return SessionEnded{Base: NewBase(KindSessionEnded), Reason: reason}
}
