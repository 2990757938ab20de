package orchestration

import "github.com/vettlabs/vett-core/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

// newCallbackEventEmitter fans typed events out to the per-session callbacks.
// The question callback is invoked by the orchestrator directly with the full
// Turn, since the event carries only its presentational subset.
func newCallbackEventEmitter(opts SessionOptions) eventEmitter {
	return func(event events.Event) {
		if opts.onEvent != nil {
			opts.onEvent(event)
		}

		switch typedEvent := event.(type) {
		case events.TurnAnswerAssessed:
			if opts.onAssessment != nil {
				opts.onAssessment(typedEvent.Record)
			}
		case events.SessionEnded:
			if opts.onEnded != nil {
				opts.onEnded(typedEvent.Reason)
			}
		}
	}
}
