// Package events defines the typed session event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - session.*
//   - turn.*
//   - followup.*
//
// session events
//
//   - SessionStarted (session.started): a session entered the in-progress
//     phase with an accepted plan; includes the session ID.
//   - SessionPlanAccepted (session.plan_accepted): the plan passed validation;
//     includes topic and question counts.
//   - SessionEnded (session.ended): the session reached its absorbing terminal
//     phase; includes a human-readable reason.
//
// turn events
//
//   - TurnQuestionAsked (turn.question_asked): a turn was generated and is
//     awaiting the candidate's answer; includes position, topic name, the
//     utterance text (possibly empty), the effective action that produced the
//     turn, and whether the turn is planned or a follow-up.
//   - TurnAnswerAssessed (turn.answer_assessed): an answer was assessed and
//     its record appended to the session log.
//
// followup events
//
//   - FollowUpEntered (followup.entered): the conversation paused the plan for
//     a spontaneous digression; includes the paused position and the streak
//     count after entering.
//   - FollowUpExited (followup.exited): the digression was answered and the
//     plan resumed; includes the resumed position.
//   - FollowUpOverridden (followup.overridden): a digression request was
//     refused because the streak ceiling was reached; includes the position
//     and the planned action forced instead.
package events
