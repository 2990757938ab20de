// Package orchestration drives an automated, multi-turn technical interview.
//
// The orchestrator owns a single session at a time and reconciles three
// fallible decision sources into one bounded conversation trajectory: the
// accepted plan, the turn-generation collaborator (which may digress into
// spontaneous follow-up questions), and the answer-assessment collaborator
// (whose requested flow actions are corrected by the Attempt Governor and the
// Action Resolver before they navigate the plan).
package orchestration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/vettlabs/vett-core/core/events"
	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrSessionBusy             = errors.New("orchestration step already in flight")
	ErrSessionEnded            = errors.New("session has ended")
	ErrSessionSuperseded       = errors.New("session superseded, result discarded")
	ErrNoActiveSession         = errors.New("no active session")
	ErrAwaitingAnswer          = errors.New("a turn is already awaiting an answer")
	ErrNoPendingTurn           = errors.New("no turn awaiting an answer")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)

type Orchestrator struct {
	planner     Planner
	interviewer Interviewer
	assessor    Assessor
	reporter    Reporter

	attemptCeiling  int
	followUpCeiling int

	// mu guards the session pointer and phase; everything else in the
	// session is only touched by the single in-flight orchestration step.
	mu             sync.RWMutex
	session        *session
	emit           eventEmitter
	sessionOptions SessionOptions

	// busy enforces at most one outstanding orchestration step.
	busy atomic.Bool
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		attemptCeiling:  defaultAttemptCeiling,
		followUpCeiling: defaultFollowUpCeiling,
		emit:            noopEventEmitter,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// StartSession generates a plan for the given job/competency description,
// validates it, and seeds a fresh session at the first topic's first
// question. A previous session, ended or not, is superseded.
func (o *Orchestrator) StartSession(ctx context.Context, description string, opts ...SessionOption) error {
	if o.planner == nil {
		return fmt.Errorf("cannot start session: no planner configured")
	}
	if !o.busy.CompareAndSwap(false, true) {
		return ErrSessionBusy
	}
	defer o.busy.Store(false)

	ctx, span := tracer.Start(ctx, "start session")
	defer span.End()

	s := o.beginSession(opts...)
	span.SetAttributes(attribute.String("session.id", s.id))

	plan, err := o.planner.GeneratePlan(ctx, description)
	if err != nil {
		if errors.Is(err, plans.ErrInvalidPlan) {
			o.abortPlanning(ctx, s, span, err)
			return err
		}
		recordedErr := fmt.Errorf("%w: plan generation failed: %v", ErrCollaboratorUnavailable, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		o.endSession(ctx, s, "plan generation unavailable")
		return recordedErr
	}
	if o.sessionDiscarded(s, PhasePlanning) {
		return ErrSessionSuperseded
	}

	return o.acceptPlan(ctx, s, span, plan)
}

// StartSessionWithPlan seeds a fresh session from an already accepted plan,
// skipping the plan-generation collaborator.
func (o *Orchestrator) StartSessionWithPlan(ctx context.Context, plan *plans.Plan, opts ...SessionOption) error {
	if !o.busy.CompareAndSwap(false, true) {
		return ErrSessionBusy
	}
	defer o.busy.Store(false)

	ctx, span := tracer.Start(ctx, "start session with plan")
	defer span.End()

	s := o.beginSession(opts...)
	span.SetAttributes(attribute.String("session.id", s.id))

	return o.acceptPlan(ctx, s, span, plan)
}

func (o *Orchestrator) beginSession(opts ...SessionOption) *session {
	sessionOptions := SessionOptions{}
	for _, opt := range opts {
		opt(&sessionOptions)
	}

	s := &session{
		id:            uuid.NewString(),
		phase:         PhasePlanning,
		pendingAction: interviews.ActionNextQuestion,
		attempts:      newAttemptTracker(o.attemptCeiling),
		followUps:     newFollowUpStack(o.followUpCeiling),
	}

	o.mu.Lock()
	o.session = s
	o.sessionOptions = sessionOptions
	o.emit = newCallbackEventEmitter(sessionOptions)
	o.mu.Unlock()

	return s
}

func (o *Orchestrator) acceptPlan(ctx context.Context, s *session, span trace.Span, plan *plans.Plan) error {
	if plan == nil {
		err := fmt.Errorf("%w: planner returned no plan", plans.ErrInvalidPlan)
		o.abortPlanning(ctx, s, span, err)
		return err
	}

	o.mu.Lock()
	s.plan = plan
	s.phase = PhasePlanAccepted
	o.mu.Unlock()
	o.emit(events.NewSessionPlanAccepted(plan.TopicCount(), plan.QuestionCount()))

	// PlanAccepted transitions to InProgress immediately, seeding the first
	// topic's first question.
	o.mu.Lock()
	s.position = plans.Position{}
	s.pendingAction = interviews.ActionNextQuestion
	s.attempts = s.attempts.moveTo(s.position)
	s.phase = PhaseInProgress
	o.mu.Unlock()
	o.emit(events.NewSessionStarted(s.id))

	span.SetAttributes(
		attribute.Int("plan.topics", plan.TopicCount()),
		attribute.Int("plan.questions", plan.QuestionCount()),
	)
	return nil
}

// abortPlanning returns the session to Setup, the phase plan validation
// failures recover to.
func (o *Orchestrator) abortPlanning(ctx context.Context, s *session, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	logger.ErrorContext(ctx, "plan rejected", "session_id", s.id, "error", err)

	o.mu.Lock()
	s.phase = PhaseSetup
	o.mu.Unlock()
}

// NextTurn asks the turn-generation collaborator for the next turn and
// returns it for presentation. When the collaborator digresses into a
// follow-up and the streak ceiling allows, the plan is paused and the
// follow-up returned instead; at the ceiling the digression is ignored and
// the next planned turn forced.
func (o *Orchestrator) NextTurn(ctx context.Context) (*Turn, error) {
	if o.interviewer == nil {
		return nil, fmt.Errorf("cannot generate turn: no interviewer configured")
	}
	if !o.busy.CompareAndSwap(false, true) {
		return nil, ErrSessionBusy
	}
	defer o.busy.Store(false)

	s := o.activeSession()
	if s == nil {
		return nil, ErrNoActiveSession
	}
	switch o.phaseOf(s) {
	case PhaseEnded:
		return nil, ErrSessionEnded
	case PhaseInProgress:
	default:
		return nil, fmt.Errorf("cannot generate a turn in phase %q", o.phaseOf(s))
	}
	if s.currentTurn != nil {
		return nil, ErrAwaitingAnswer
	}

	ctx, span := tracer.Start(ctx, "generate turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("turn.position", s.position.String()),
		attribute.String("turn.action", s.pendingAction.String()),
	)

	return o.generateTurn(ctx, s, span, false)
}

func (o *Orchestrator) generateTurn(ctx context.Context, s *session, span trace.Span, forcePlanned bool) (*Turn, error) {
	question, ok := s.plan.Question(s.position)
	if !ok {
		// Resolver output always addresses a question; reaching this means
		// session state was corrupted. Fail safe into termination.
		err := fmt.Errorf("no question at position %s", s.position)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.endSession(ctx, s, "internal navigation error")
		return nil, err
	}

	request := interviews.TurnRequest{
		TopicName:        s.plan.TopicName(s.position.Topic),
		QuestionText:     question,
		Action:           s.pendingAction,
		PreviousTurnText: s.lastTurnText,
		PreviousAnswer:   s.lastAnswer,
		DiscussionHint:   s.discussionHint,
	}

	output, err := o.interviewer.GenerateTurn(ctx, request)
	if err != nil {
		recordedErr := fmt.Errorf("%w: turn generation failed: %v", ErrCollaboratorUnavailable, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		if o.sessionDiscarded(s, PhaseInProgress) {
			return nil, ErrSessionSuperseded
		}
		o.endSession(ctx, s, "turn generation unavailable")
		return nil, recordedErr
	}
	if o.sessionDiscarded(s, PhaseInProgress) {
		return nil, ErrSessionSuperseded
	}

	kind, text := normalizeTurnOutput(ctx, output)
	if forcePlanned {
		kind = interviews.TurnKindPlanned
	}

	if kind == interviews.TurnKindFollowUp {
		if s.followUps.enter(s.position, s.attempts, s.pendingAction) {
			turn := &Turn{
				SessionID:    s.id,
				Position:     s.position,
				TopicName:    request.TopicName,
				QuestionText: text,
				Text:         text,
				Kind:         interviews.TurnKindFollowUp,
				Action:       s.pendingAction,
			}
			s.currentTurn = turn
			span.SetAttributes(
				attribute.String("turn.kind", string(interviews.TurnKindFollowUp)),
				attribute.Int("followup.streak", s.followUps.streakCount()),
			)
			o.emit(events.NewFollowUpEntered(s.position, s.followUps.streakCount()))
			o.presentTurn(*turn)
			presented := *turn
			return &presented, nil
		}

		// Streak ceiling reached: the digression is ignored and the next
		// planned action forced, as the position dictates.
		s.followUps.resetStreak()
		forced := resolveAction(s.plan, s.position, interviews.ActionNextQuestion)
		span.AddEvent("follow-up overridden", trace.WithAttributes(
			attribute.String("followup.forced_action", forced.action.String()),
		))
		o.emit(events.NewFollowUpOverridden(s.position, forced.action))
		if forced.terminal {
			o.endSession(ctx, s, "interview complete")
			return nil, ErrSessionEnded
		}
		s.position = forced.next
		s.pendingAction = forced.action
		s.attempts = s.attempts.moveTo(forced.next)
		return o.generateTurn(ctx, s, span, true)
	}

	turn := &Turn{
		SessionID:    s.id,
		Position:     s.position,
		TopicName:    request.TopicName,
		QuestionText: question,
		Text:         text,
		Kind:         interviews.TurnKindPlanned,
		Action:       s.pendingAction,
	}
	s.currentTurn = turn
	span.SetAttributes(attribute.String("turn.kind", string(interviews.TurnKindPlanned)))
	o.presentTurn(*turn)
	presented := *turn
	return &presented, nil
}

func (o *Orchestrator) presentTurn(turn Turn) {
	o.emit(events.NewTurnQuestionAsked(turn.Position, turn.TopicName, turn.Text, turn.Action, turn.Kind))
	if o.sessionOptions.onQuestion != nil {
		o.sessionOptions.onQuestion(turn)
	}
}

// normalizeTurnOutput recovers malformed turn-generation output locally:
// unknown kinds default to a planned turn and missing output to empty text.
// Empty text is a valid turn with no utterance to display.
func normalizeTurnOutput(ctx context.Context, output *interviews.TurnOutput) (interviews.TurnKind, string) {
	if output == nil {
		logger.WarnContext(ctx, "turn generation returned no output, defaulting to planned turn")
		return interviews.TurnKindPlanned, ""
	}
	if !output.Kind.Valid() {
		logger.WarnContext(ctx, "turn generation returned unknown kind, defaulting to planned", "kind", string(output.Kind))
		return interviews.TurnKindPlanned, output.Text
	}
	return output.Kind, output.Text
}

// SubmitAnswer records the candidate's answer to the pending turn, has it
// assessed, and advances the session: Attempt Governor first, the Action
// Resolver second. Exactly one session-log entry is appended per answered
// turn.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, answer string) (*interviews.AssessmentRecord, error) {
	if o.assessor == nil {
		return nil, fmt.Errorf("cannot assess answer: no assessor configured")
	}
	if !o.busy.CompareAndSwap(false, true) {
		return nil, ErrSessionBusy
	}
	defer o.busy.Store(false)

	s := o.activeSession()
	if s == nil {
		return nil, ErrNoActiveSession
	}
	switch o.phaseOf(s) {
	case PhaseEnded:
		return nil, ErrSessionEnded
	case PhaseInProgress:
	default:
		return nil, fmt.Errorf("cannot submit an answer in phase %q", o.phaseOf(s))
	}
	turn := s.currentTurn
	if turn == nil {
		return nil, ErrNoPendingTurn
	}

	ctx, span := tracer.Start(ctx, "process answer")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("turn.position", turn.Position.String()),
		attribute.String("turn.kind", string(turn.Kind)),
	)

	request := interviews.AssessmentRequest{
		Position:     turn.Position,
		QuestionText: turn.QuestionText,
		AnswerText:   answer,
		History:      append([]interviews.Exchange(nil), s.history...),
		IsFollowUp:   turn.Kind == interviews.TurnKindFollowUp,
	}

	record, err := o.assessor.Assess(ctx, request)
	if err != nil {
		recordedErr := fmt.Errorf("%w: assessment failed: %v", ErrCollaboratorUnavailable, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		if o.sessionDiscarded(s, PhaseInProgress) {
			return nil, ErrSessionSuperseded
		}
		o.endSession(ctx, s, "assessment unavailable")
		return nil, recordedErr
	}
	if o.sessionDiscarded(s, PhaseInProgress) {
		return nil, ErrSessionSuperseded
	}

	if record == nil {
		err := fmt.Errorf("%w: assessor returned no record", interviews.ErrInvalidAssessment)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.endSession(ctx, s, "invalid assessment")
		return nil, err
	}
	if err := record.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.endSession(ctx, s, "invalid assessment")
		return nil, err
	}

	// Position and kind tags belong to the engine, not the assessor.
	assessed := *record
	assessed.Position = turn.Position
	assessed.Kind = turn.Kind

	s.history = append(s.history, interviews.Exchange{Question: turn.QuestionText, Answer: answer})
	s.lastTurnText = turn.Text
	s.lastAnswer = answer
	s.discussionHint = assessed.DiscussionPoint
	s.currentTurn = nil

	s.log.append(assessed)
	o.emit(events.NewTurnAnswerAssessed(assessed))
	span.SetAttributes(
		attribute.String("assessment.action", assessed.Action.String()),
		attribute.Int("session.log_entries", s.log.size()),
	)

	if turn.Kind == interviews.TurnKindFollowUp {
		o.resumeFromFollowUp(ctx, s, span)
		return &assessed, nil
	}

	attempts, governed := s.attempts.record(s.position, assessed.Action)
	if governed != assessed.Action {
		span.AddEvent("attempt ceiling escalation", trace.WithAttributes(
			attribute.String("attempts.escalated_action", governed.String()),
		))
	}

	resolved := resolveAction(s.plan, s.position, governed)
	if resolved.terminal {
		s.attempts = attempts
		o.endSession(ctx, s, "interview complete")
		return &assessed, nil
	}

	if resolved.next != s.position {
		attempts = attempts.moveTo(resolved.next)
		s.followUps.resetStreak()
	}
	s.attempts = attempts
	s.position = resolved.next
	s.pendingAction = resolved.action
	return &assessed, nil
}

// resumeFromFollowUp restores the planned state paused by the digression:
// the paused position, its attempt count, and the planned action that was
// pending when the conversation left the plan. The digression's own assessed
// action never navigates the plan, so a follow-up always yields ground back
// to the planned question it interrupted.
func (o *Orchestrator) resumeFromFollowUp(ctx context.Context, s *session, span trace.Span) {
	paused, ok := s.followUps.exit()
	if !ok {
		// A follow-up turn without an active digression means state was
		// corrupted; keep going from the current planned state.
		span.RecordError(fmt.Errorf("follow-up answered without an active digression"))
		return
	}
	o.emit(events.NewFollowUpExited(paused.pausedPosition))

	s.position = paused.pausedPosition
	s.attempts = paused.pausedAttempts
	s.pendingAction = paused.resumingAction
	span.AddEvent("resumed from follow-up", trace.WithAttributes(
		attribute.String("turn.position", paused.pausedPosition.String()),
		attribute.String("turn.action", paused.resumingAction.String()),
	))
}

// EndSession terminates the active session, if any. It is safe to call while
// an orchestration step is in flight: the step's eventual collaborator result
// is discarded when it arrives.
func (o *Orchestrator) EndSession() {
	o.mu.Lock()
	s := o.session
	if s == nil || s.phase == PhaseEnded {
		o.mu.Unlock()
		return
	}
	s.phase = PhaseEnded
	s.endReason = "cancelled"
	s.currentTurn = nil
	emit := o.emit
	o.mu.Unlock()

	emit(events.NewSessionEnded("cancelled"))
}

func (o *Orchestrator) endSession(ctx context.Context, s *session, reason string) {
	o.mu.Lock()
	if s.phase == PhaseEnded {
		o.mu.Unlock()
		return
	}
	s.phase = PhaseEnded
	s.endReason = reason
	s.currentTurn = nil
	o.mu.Unlock()

	logger.InfoContext(ctx, "session ended", "session_id", s.id, "reason", reason, "log_entries", s.log.size())
	o.emit(events.NewSessionEnded(reason))
}

// Report feeds the finished session's log to the reporting collaborator and
// returns its narrative. It requires an ended session.
func (o *Orchestrator) Report(ctx context.Context) (string, error) {
	if o.reporter == nil {
		return "", fmt.Errorf("cannot generate report: no reporter configured")
	}

	s := o.activeSession()
	if s == nil {
		return "", ErrNoActiveSession
	}
	if o.phaseOf(s) != PhaseEnded {
		return "", fmt.Errorf("cannot generate report in phase %q", o.phaseOf(s))
	}

	ctx, span := tracer.Start(ctx, "generate report")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("session.log_entries", s.log.size()),
	)

	report, err := o.reporter.GenerateReport(ctx, s.log.snapshot())
	if err != nil {
		recordedErr := fmt.Errorf("%w: report generation failed: %v", ErrCollaboratorUnavailable, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return "", recordedErr
	}
	return report, nil
}

// Phase returns the lifecycle phase of the current session, or Setup when no
// session has been started.
func (o *Orchestrator) Phase() Phase {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.session == nil {
		return PhaseSetup
	}
	return o.session.phase
}

// EndReason returns the human-readable reason the session ended, or an
// empty string while it has not.
func (o *Orchestrator) EndReason() string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.session == nil {
		return ""
	}
	return o.session.endReason
}

// Position returns the current planned position. While a follow-up is
// active, this is the paused planned position the conversation resumes to.
func (o *Orchestrator) Position() plans.Position {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.session == nil {
		return plans.Position{}
	}
	return o.session.position
}

// InFollowUp reports whether the conversation is inside a digression.
func (o *Orchestrator) InFollowUp() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.session == nil {
		return false
	}
	return o.session.followUps.inDigression()
}

// SessionLog returns an ordered copy of the assessment records appended so
// far, one per answered turn.
func (o *Orchestrator) SessionLog() []interviews.AssessmentRecord {
	o.mu.RLock()
	s := o.session
	o.mu.RUnlock()

	if s == nil {
		return nil
	}
	return s.log.snapshot()
}

func (o *Orchestrator) activeSession() *session {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.session
}

func (o *Orchestrator) phaseOf(s *session) Phase {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return s.phase
}

// sessionDiscarded reports whether a collaborator result that just arrived
// for s must be thrown away: the session was superseded by a newer one, or
// left the phase the step started in.
func (o *Orchestrator) sessionDiscarded(s *session, expected Phase) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.session != s || s.phase != expected
}
