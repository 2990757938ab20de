package orchestration

import (
	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

// resolution is the Action Resolver's verdict: the action that will actually
// be taken, the position it leads to, and whether the session is over.
type resolution struct {
	action   interviews.ActionCode
	next     plans.Position
	terminal bool
}

// resolveAction maps a requested action onto the plan. It is the single
// source of truth for plan-consistent navigation; the assessor's requests are
// corrected here, never honored blindly.
//
// Rules, in priority order:
//
//  1. An End request, a missing plan, or an out-of-bounds topic terminates.
//  2. A NextTopic request while the current topic still has questions left is
//     downgraded to NextQuestion; a topic may only be abandoned once its
//     questions are exhausted.
//  3. A position already past its topic's last question rolls into the next
//     topic, or terminates when there is none.
//  4. Otherwise the request is honored: Repeat/Clarify hold the position,
//     NextQuestion and NextTopic advance. An advance that lands past the last
//     question of the last topic terminates instead.
func resolveAction(plan *plans.Plan, position plans.Position, requested interviews.ActionCode) resolution {
	if plan == nil || requested == interviews.ActionEnd || position.Topic < 0 || position.Topic >= plan.TopicCount() {
		return resolution{action: interviews.ActionEnd, next: position, terminal: true}
	}

	if requested == interviews.ActionNextTopic && !plan.IsExhausted(position) {
		requested = interviews.ActionNextQuestion
	}

	if plan.IsExhausted(position) {
		return advanceTopic(plan, position)
	}

	switch requested {
	case interviews.ActionRepeat, interviews.ActionClarify:
		return resolution{action: requested, next: position}

	case interviews.ActionNextQuestion:
		next := plans.Position{Topic: position.Topic, Question: position.Question + 1}
		if plan.IsExhausted(next) {
			return advanceTopic(plan, next)
		}
		return resolution{action: interviews.ActionNextQuestion, next: next}

	case interviews.ActionNextTopic:
		return advanceTopic(plan, position)
	}

	// Unknown action codes fail safe into termination.
	return resolution{action: interviews.ActionEnd, next: position, terminal: true}
}

func advanceTopic(plan *plans.Plan, position plans.Position) resolution {
	if plan.HasTopic(position.Topic + 1) {
		return resolution{action: interviews.ActionNextTopic, next: plans.Position{Topic: position.Topic + 1}}
	}
	return resolution{action: interviews.ActionEnd, next: position, terminal: true}
}
