// Package filter adapts the guard engine to an inline message filter hook. A hook gets a query with optional
// sender and body, and answers with an action, junk or none. It never answers with an explicit allow.
package filter

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/umputun/msg-guard/lib/spamcheck"
)

//go:generate moq --out mocks/classifier.go --pkg mocks --with-resets --skip-ensure . Classifier

// Classifier is a message classifier, stops on the first triggered rule
type Classifier interface {
	EvaluateFirst(msg spamcheck.Message) (spamcheck.Finding, bool)
}

// Query is a filter request, either field may be absent
type Query struct {
	Sender *string `json:"sender,omitempty"`
	Body   *string `json:"body,omitempty"`
}

// Message returns the message for a complete query, ok is false if sender or body is absent
func (q Query) Message() (msg spamcheck.Message, ok bool) {
	if q.Sender == nil || q.Body == nil {
		return spamcheck.Message{}, false
	}
	return spamcheck.Message{Sender: *q.Sender, Body: *q.Body}, true
}

// Action is a filter response
type Action int

// enum of all actions
const (
	ActionNone Action = iota // no opinion, the host delivers the message normally
	ActionJunk               // deliver to junk
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionJunk:
		return "junk"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes action as its name
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes action from its name
func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("can't decode action: %w", err)
	}
	switch s {
	case "none":
		*a = ActionNone
	case "junk":
		*a = ActionJunk
	default:
		return fmt.Errorf("unknown action %q", s)
	}
	return nil
}

// Filter answers inline filter queries with a classifier
type Filter struct {
	classifier Classifier
}

// New makes a Filter for the given classifier
func New(c Classifier) *Filter {
	return &Filter{classifier: c}
}

// Handle classifies the query. An incomplete query is not classified and gets ActionNone.
func (f *Filter) Handle(q Query) Action {
	msg, ok := q.Message()
	if !ok {
		log.Printf("[DEBUG] incomplete query, sender set: %v, body set: %v", q.Sender != nil, q.Body != nil)
		return ActionNone
	}
	if _, found := f.classifier.EvaluateFirst(msg); found {
		return ActionJunk
	}
	return ActionNone
}
