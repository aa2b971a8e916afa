package workflow

import "github.com/peusirf-a11y/requisicao-digital/internal/directory"

// History labels written by the engine. Rejection labels get the free-text
// justification appended as "<label>: <justification>".
const (
	labelSubmitted          = "Requisição Feita"
	labelSupervisorApproved = "Aprovado por Supervisor"
	labelSupervisorRejected = "Recusado por Supervisor"
	labelTechnicianApproved = "Aprovado por Técnico de Segurança"
	labelTechnicianRejected = "Recusado por Técnico de Segurança"
	labelReserved           = "Reservado"
	labelDelivered          = "Entregue"
)

// rule is one edge of the transition table: who may move a requisition from
// the keyed status via the keyed action, where it lands, what gets written to
// history and who is notified. An empty NotifyRole targets the requester.
type rule struct {
	To         Status
	Role       directory.Role
	Label      string
	NotifyRole directory.Role
}

var transitions = map[Status]map[Action]rule{
	StatusPendingSupervisor: {
		ActionApprove: {To: StatusPendingTechnician, Role: directory.RoleSupervisor, Label: labelSupervisorApproved, NotifyRole: directory.RoleSafetyTechnician},
		ActionReject:  {To: StatusRejected, Role: directory.RoleSupervisor, Label: labelSupervisorRejected},
	},
	StatusPendingTechnician: {
		ActionApprove: {To: StatusApproved, Role: directory.RoleSafetyTechnician, Label: labelTechnicianApproved, NotifyRole: directory.RoleReservist},
		ActionReject:  {To: StatusRejected, Role: directory.RoleSafetyTechnician, Label: labelTechnicianRejected},
	},
	StatusApproved: {
		ActionReserve: {To: StatusReserved, Role: directory.RoleReservist, Label: labelReserved, NotifyRole: directory.RoleWarehouse},
	},
	StatusReserved: {
		ActionDeliver: {To: StatusDelivered, Role: directory.RoleWarehouse, Label: labelDelivered},
	},
}

// lookup returns the rule for (status, action), if such an edge exists.
func lookup(from Status, action Action) (rule, bool) {
	edges, ok := transitions[from]
	if !ok {
		return rule{}, false
	}
	r, ok := edges[action]
	return r, ok
}
