package types

// LinkStatus is the computed state of a managed link
type LinkStatus string

const (
	LinkActive   LinkStatus = "active"
	LinkInactive LinkStatus = "inactive"
)

// InactiveReason explains why a link is not active
type InactiveReason string

const (
	ReasonNone        InactiveReason = ""
	ReasonMissing     InactiveReason = "missing"
	ReasonNotSymlink  InactiveReason = "not-symlink"
	ReasonWrongTarget InactiveReason = "wrong-target"
	ReasonUnresolved  InactiveReason = "unresolved"
)

// ResolvedLink is a link specification merged with its group defaults and
// with both paths made absolute.
type ResolvedLink struct {
	Name     string `json:"name"`
	Link     string `json:"link"`
	Target   string `json:"target"`
	Relative bool   `json:"relative"`
	Force    bool   `json:"force"`
}

// LinkReport is the status of one link
type LinkReport struct {
	Name   string         `json:"name"`
	Link   string         `json:"link"`
	Target string         `json:"target"`
	Status LinkStatus     `json:"status"`
	Reason InactiveReason `json:"reason,omitempty"`

	// Content is the raw text stored in the on-disk link, if any
	Content string `json:"content,omitempty"`

	// StyleMismatch is set on an active link whose stored form (relative or
	// absolute) differs from the configured one.
	StyleMismatch bool   `json:"style_mismatch,omitempty"`
	Relative      bool   `json:"relative"`
	Error         string `json:"error,omitempty"`
}

// IsActive reports whether the link is active
func (r LinkReport) IsActive() bool {
	return r.Status == LinkActive
}

// StatusResult is the outcome of a status run
type StatusResult struct {
	Workspace string       `json:"workspace"`
	Links     []LinkReport `json:"links"`
}

// Active returns the number of active links
func (r *StatusResult) Active() int {
	n := 0
	for _, l := range r.Links {
		if l.IsActive() {
			n++
		}
	}
	return n
}

// Action is what a create or delete run did to one link
type Action string

const (
	ActionCreated Action = "created"
	ActionDeleted Action = "deleted"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// LinkOutcome is the per-link result of a create or delete run
type LinkOutcome struct {
	Name      string   `json:"name"`
	Link      string   `json:"link"`
	Target    string   `json:"target,omitempty"`
	Content   string   `json:"content,omitempty"`
	Action    Action   `json:"action"`
	Steps     []string `json:"steps,omitempty"`
	Simulated bool     `json:"simulated"`
	Err       error    `json:"-"`
	Error     string   `json:"error,omitempty"`
}

// Fail records err on the outcome
func (o *LinkOutcome) Fail(err error) {
	o.Action = ActionFailed
	o.Err = err
	if err != nil {
		o.Error = err.Error()
	}
}

// RunResult is the outcome of a create or delete run
type RunResult struct {
	Workspace string        `json:"workspace"`
	Simulated bool          `json:"simulated"`
	Outcomes  []LinkOutcome `json:"outcomes"`
}

// Failed returns the number of links that failed
func (r *RunResult) Failed() int {
	return r.count(ActionFailed)
}

// Count returns the number of outcomes with the given action
func (r *RunResult) Count(action Action) int {
	return r.count(action)
}

func (r *RunResult) count(action Action) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == action {
			n++
		}
	}
	return n
}
