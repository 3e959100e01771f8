package plan

import "encoding/json"

// Status tracks an action through execution.
type Status string

const (
	StatusPending Status = "pending"
	StatusApplied Status = "applied"
	StatusFailed  Status = "failed"
)

// Step pairs an action with its execution status. Steps start Pending;
// the executor moves each to Applied or Failed in plan order.
type Step struct {
	Action Action
	Status Status
}

// MarshalJSON flattens the step into a tagged union:
// the action's own fields plus "action" and "status" discriminators.
func (s *Step) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(s.Action)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["action"] = s.Action.Kind()
	fields["status"] = s.Status
	return json.Marshal(fields)
}

// Plan is the ordered action list resolved for one target on one host.
type Plan struct {
	Target string  `json:"target"`
	Host   string  `json:"host"`
	Steps  []*Step `json:"steps"`
}

// New returns an empty plan for the given target and host names.
func New(target, host string) *Plan {
	return &Plan{Target: target, Host: host}
}

// Add appends an action as a pending step.
func (p *Plan) Add(a Action) {
	p.Steps = append(p.Steps, &Step{Action: a, Status: StatusPending})
}

// Complete reports whether every step has been applied.
func (p *Plan) Complete() bool {
	for _, s := range p.Steps {
		if s.Status != StatusApplied {
			return false
		}
	}
	return true
}

// Actions returns the plan's actions in order, without status.
// Convenient for tests asserting plan content.
func (p *Plan) Actions() []Action {
	out := make([]Action, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.Action
	}
	return out
}
