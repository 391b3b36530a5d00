package quota

import "github.com/selebrow/dbquota/pkg/models"

type Action int

const (
	ActionNone Action = iota
	ActionRevoke
	ActionGrant
)

func (a Action) String() string {
	switch a {
	case ActionRevoke:
		return "revoke"
	case ActionGrant:
		return "grant"
	default:
		return "none"
	}
}

// Transition decides what to do with a tenant given its current state and measured size.
// Limit is inclusive on the revoke side and there is no hysteresis band, so a database
// fluctuating around the limit flips state on every cycle that crosses it.
func Transition(state models.QuotaState, size, limit int64) (Action, models.QuotaState) {
	over := size >= limit
	switch {
	case over && state == models.QuotaOK:
		return ActionRevoke, models.QuotaOverQuota
	case !over && state == models.QuotaOverQuota:
		return ActionGrant, models.QuotaOK
	default:
		return ActionNone, state
	}
}
