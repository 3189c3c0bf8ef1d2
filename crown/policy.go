package crown

import "github.com/daler-sz/adaptix/internal/common"

// ExtraPolicy is the per-branch rule for input data not claimed by any
// declared key or index.
type ExtraPolicy int

const (
	// ExtraIgnore silently accepts unclaimed data. The zero value.
	ExtraIgnore ExtraPolicy = iota
	// ExtraForbid fails extraction when unclaimed data is present.
	ExtraForbid
	// ExtraCollect gathers unclaimed data into an overflow holder that
	// can be routed to extra-target fields.
	ExtraCollect
)

// String returns a human-readable policy name.
func (p ExtraPolicy) String() string {
	switch p {
	case ExtraIgnore:
		return "ignore"
	case ExtraForbid:
		return "forbid"
	case ExtraCollect:
		return "collect"
	default:
		return common.UnknownStr
	}
}
