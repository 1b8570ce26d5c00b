package spamcheck

import (
	"fmt"
	"strings"
)

// Message is a message to classify. Both fields are untrusted and may be empty.
type Message struct {
	Sender string `json:"sender"` // sender identifier, phone number, shortcode or email address
	Body   string `json:"body"`   // message text
}

func (m *Message) String() string {
	return fmt.Sprintf("sender:%q, body:%q", m.Sender, m.Body)
}

// Finding is a single triggered rule.
type Finding struct {
	Rule        string `json:"rule"`            // name of the rule
	Description string `json:"description"`     // human-readable reason, shown to users
	Match       string `json:"match,omitempty"` // corpus entry or token which triggered the rule
}

func (f *Finding) String() string {
	if f.Match == "" {
		return fmt.Sprintf("%s: %s", f.Rule, f.Description)
	}
	return fmt.Sprintf("%s: %s (%s)", f.Rule, f.Description, f.Match)
}

// Result is an ordered list of unique findings, in the order rules triggered.
// An empty result means the message passes.
type Result []Finding

// Spam returns true if any rule triggered.
func (r Result) Spam() bool { return len(r) > 0 }

// Descriptions returns descriptions of all findings, in order.
func (r Result) Descriptions() []string {
	res := make([]string, 0, len(r))
	for _, f := range r {
		res = append(res, f.Description)
	}
	return res
}

// Add appends a finding unless a finding with the same description is already present.
// Returns false if the finding was a duplicate.
func (r *Result) Add(f Finding) bool {
	for _, existing := range *r {
		if existing.Description == f.Description {
			return false
		}
	}
	*r = append(*r, f)
	return true
}

// Verdict returns a one-line verdict for users
func (r Result) Verdict() string {
	if r.Spam() {
		return "This message is blocked by Message Guard."
	}
	return "This message is not blocked by Message Guard."
}

// Explanation returns the bullet list of reasons for a blocked message, empty if the message passes
func (r Result) Explanation() string {
	if !r.Spam() {
		return ""
	}
	lines := make([]string, 0, len(r)+1)
	lines = append(lines, "The message is blocked due to the following:")
	for _, d := range r.Descriptions() {
		lines = append(lines, " \u2022 "+d)
	}
	return strings.Join(lines, "\n")
}

func (r Result) String() string {
	elems := []string{}
	for _, f := range r {
		elems = append(elems, "{"+f.String()+"}")
	}
	return fmt.Sprintf("[%s]", strings.Join(elems, ", "))
}
