package workflow

import (
	"sort"

	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
)

// Visible filters a requisition list down to what one user may see.
// Collaborators see only their own; approvers and warehouse roles see the
// slice of the pipeline they act on; admins see everything. The function is
// pure and snapshot-safe: it never mutates the input slice.
func Visible(reqs []Requisition, user directory.User) []Requisition {
	if !user.Role.Valid() {
		return nil
	}
	out := filter(reqs, func(r Requisition) bool { return VisibleOne(r, user) })
	if user.Role == directory.RoleSupervisor {
		sortSupervisor(out)
	}
	return out
}

// VisibleOne reports whether a single requisition falls inside the user's
// view. It is the predicate Visible applies to every element.
func VisibleOne(r Requisition, user directory.User) bool {
	switch user.Role {
	case directory.RoleCollaborator:
		return r.Requester.ID == user.ID
	case directory.RoleSupervisor, directory.RoleAdmin:
		return true
	case directory.RoleSafetyTechnician:
		return r.Status == StatusPendingTechnician
	case directory.RoleReservist:
		return r.Status == StatusApproved
	case directory.RoleWarehouse:
		return r.Status == StatusReserved
	default:
		return false
	}
}

func filter(reqs []Requisition, keep func(Requisition) bool) []Requisition {
	out := make([]Requisition, 0, len(reqs))
	for _, r := range reqs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// sortSupervisor orders the supervisor queue: requisitions awaiting their
// decision first, then by date, newest first. The sort is stable so
// same-timestamp requisitions keep their stored order.
func sortSupervisor(reqs []Requisition) {
	sort.SliceStable(reqs, func(i, j int) bool {
		pi := reqs[i].Status == StatusPendingSupervisor
		pj := reqs[j].Status == StatusPendingSupervisor
		if pi != pj {
			return pi
		}
		return reqs[i].Date.After(reqs[j].Date)
	})
}
