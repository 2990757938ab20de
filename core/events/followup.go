package events

import (
	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

// KindFollowUpEntered identifies the start of a digression.
const KindFollowUpEntered Kind = "followup.entered"

// FollowUpEntered marks the plan pausing for a spontaneous follow-up.
type FollowUpEntered struct {
	Base
	PausedPosition plans.Position
	Streak         int
}

// NewFollowUpEntered creates a follow-up entered event.
func NewFollowUpEntered(pausedPosition plans.Position, streak int) FollowUpEntered {
	return FollowUpEntered{
		Base:           NewBase(KindFollowUpEntered),
		PausedPosition: pausedPosition,
		Streak:         streak,
	}
}

// KindFollowUpExited identifies the end of a digression.
const KindFollowUpExited Kind = "followup.exited"

// FollowUpExited marks the plan resuming after a follow-up was answered.
type FollowUpExited struct {
	Base
	ResumedPosition plans.Position
}

// NewFollowUpExited creates a follow-up exited event.
func NewFollowUpExited(resumedPosition plans.Position) FollowUpExited {
	return FollowUpExited{Base: NewBase(KindFollowUpExited), ResumedPosition: resumedPosition}
}

// KindFollowUpOverridden identifies a refused digression.
const KindFollowUpOverridden Kind = "followup.overridden"

// FollowUpOverridden marks a follow-up request refused at the streak ceiling.
type FollowUpOverridden struct {
	Base
	Position plans.Position
	Action   interviews.ActionCode
}

// NewFollowUpOverridden creates a follow-up overridden event.
func NewFollowUpOverridden(position plans.Position, action interviews.ActionCode) FollowUpOverridden {
	return FollowUpOverridden{
		Base:     NewBase(KindFollowUpOverridden),
		Position: position,
		Action:   action,
	}
}
