package markovfootball

import (
	"fmt"
	"strings"
)

// MalformedChainError reports a transition set that cannot form a valid
// absorbing chain: a probability outside [0,1], or a transient state whose
// outgoing probabilities do not sum to one.
type MalformedChainError struct {
	State   State
	Message string
}

func (e MalformedChainError) Error() string {
	return fmt.Sprintf("malformed chain at %s: %s", e.State, e.Message)
}

// SingularChainError reports that the fundamental-matrix system (I-Q)B = R
// has no solution: some transient states can loop forever with zero escape
// probability. This indicates a bug in transition construction.
type SingularChainError struct {
	States []State
}

func (e SingularChainError) Error() string {
	labels := make([]string, len(e.States))
	for i, s := range e.States {
		labels[i] = s.String()
	}
	return fmt.Sprintf("singular chain: no absorption solution for transient states [%s]", strings.Join(labels, ", "))
}

// TerminalStateError reports an operation that needs a transient state but
// was given an absorbing (or unknown) one.
type TerminalStateError struct {
	State State
}

func (e TerminalStateError) Error() string {
	return fmt.Sprintf("state %s is not transient", e.State)
}

// LineupError reports an invalid lineup configuration, such as a second
// goalkeeper or an oversized squad.
type LineupError struct {
	Lineup  string
	Message string
}

func (e LineupError) Error() string {
	return fmt.Sprintf("invalid lineup %q: %s", e.Lineup, e.Message)
}
