package workflow

import (
	"testing"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
)

func mkReq(id, requesterID string, status Status, date time.Time) Requisition {
	return Requisition{
		ID:        id,
		Requester: directory.User{ID: requesterID, Name: "u" + requesterID, Role: directory.RoleCollaborator},
		Date:      date,
		Status:    status,
	}
}

func ids(reqs []Requisition) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.ID
	}
	return out
}

func TestVisible(t *testing.T) {
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	all := []Requisition{
		mkReq("REQ-2024-001", "1", StatusPendingSupervisor, base),
		mkReq("REQ-2024-002", "4", StatusPendingTechnician, base.Add(time.Hour)),
		mkReq("REQ-2024-003", "1", StatusApproved, base.Add(2*time.Hour)),
		mkReq("REQ-2024-004", "4", StatusReserved, base.Add(3*time.Hour)),
		mkReq("REQ-2024-005", "1", StatusDelivered, base.Add(4*time.Hour)),
		mkReq("REQ-2024-006", "4", StatusRejected, base.Add(5*time.Hour)),
		mkReq("REQ-2024-007", "4", StatusPendingSupervisor, base.Add(6*time.Hour)),
	}

	cases := []struct {
		name string
		user directory.User
		want []string
	}{
		{
			"collaborator sees own only",
			directory.User{ID: "1", Role: directory.RoleCollaborator},
			[]string{"REQ-2024-001", "REQ-2024-003", "REQ-2024-005"},
		},
		{
			"supervisor sees all, pending first then newest",
			directory.User{ID: "2", Role: directory.RoleSupervisor},
			[]string{"REQ-2024-007", "REQ-2024-001", "REQ-2024-006", "REQ-2024-005", "REQ-2024-004", "REQ-2024-003", "REQ-2024-002"},
		},
		{
			"technician sees pending technician",
			directory.User{ID: "5", Role: directory.RoleSafetyTechnician},
			[]string{"REQ-2024-002"},
		},
		{
			"reservist sees approved",
			directory.User{ID: "7", Role: directory.RoleReservist},
			[]string{"REQ-2024-003"},
		},
		{
			"warehouse sees reserved",
			directory.User{ID: "6", Role: directory.RoleWarehouse},
			[]string{"REQ-2024-004"},
		},
		{
			"admin sees all",
			directory.User{ID: "3", Role: directory.RoleAdmin},
			[]string{"REQ-2024-001", "REQ-2024-002", "REQ-2024-003", "REQ-2024-004", "REQ-2024-005", "REQ-2024-006", "REQ-2024-007"},
		},
		{
			"unknown role sees nothing",
			directory.User{ID: "9", Role: "Visitante"},
			nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Visible(all, tc.user))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}

	// Input order must survive filtering.
	if all[0].ID != "REQ-2024-001" || all[6].ID != "REQ-2024-007" {
		t.Fatal("Visible mutated its input")
	}
}
