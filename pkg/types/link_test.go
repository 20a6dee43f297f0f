package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunResultCounts(t *testing.T) {
	r := &RunResult{Outcomes: []LinkOutcome{
		{Name: "a", Action: ActionCreated},
		{Name: "b", Action: ActionSkipped},
		{Name: "c", Action: ActionCreated},
	}}

	r.Outcomes[1].Fail(assert.AnError)

	assert.Equal(t, 2, r.Count(ActionCreated))
	assert.Equal(t, 0, r.Count(ActionSkipped))
	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, assert.AnError.Error(), r.Outcomes[1].Error)
}

func TestStatusResultActive(t *testing.T) {
	r := &StatusResult{Links: []LinkReport{
		{Name: "a", Status: LinkActive},
		{Name: "b", Status: LinkInactive, Reason: ReasonMissing},
	}}
	assert.Equal(t, 1, r.Active())
	assert.True(t, r.Links[0].IsActive())
	assert.False(t, r.Links[1].IsActive())
}
