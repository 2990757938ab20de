package plans

import "fmt"

// Position is a zero-based (topic, question) coordinate into a plan.
//
// A position with Question equal to the topic's question count is valid and
// means "advance to the next topic".
type Position struct {
	Topic    int
	Question int
}

func (p Position) String() string {
	return fmt.Sprintf("%d.%d", p.Topic, p.Question)
}
