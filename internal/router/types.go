package router

import "fmt"

// Action is the closed set of things a chat turn can resolve to.
type Action string

const (
	ActionSearchLoads  Action = "search_loads"
	ActionShowMyBids   Action = "show_my_bids"
	ActionActionPoints Action = "action_points"
	ActionTextReply    Action = "text_reply"
)

// Valid reports whether the action belongs to the closed set.
func (a Action) Valid() bool {
	switch a {
	case ActionSearchLoads, ActionShowMyBids, ActionActionPoints, ActionTextReply:
		return true
	}
	return false
}

// Decision is the structured routing result for one user utterance.
// Params is raw model output and must go through loads.Sanitize before it
// touches the upstream API.
type Decision struct {
	Action    Action            `json:"action"`
	ReplyText string            `json:"replyText"`
	Params    map[string]string `json:"params"`
}

// RoutingError wraps any failure to obtain a usable decision. It is fatal
// for the turn; callers never retry.
type RoutingError struct {
	Reason string
	Err    error
}

func (e *RoutingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routing failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("routing failed: %s", e.Reason)
}

func (e *RoutingError) Unwrap() error {
	return e.Err
}
