package directory

import (
	"context"

	"github.com/peusirf-a11y/requisicao-digital/internal/auth"
)

// DemoPassword is the credential shared by all seeded demo accounts.
const DemoPassword = "epi2024"

// SeedDemo loads the demo users shipped with the original EPI system.
// Intended for local runs, smoke tests and the test suite.
func SeedDemo(ctx context.Context, d *Directory) error {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	seed := []User{
		{ID: "1", Name: "João Silva", Role: RoleCollaborator, Department: "Manutenção", Shift: ShiftA, Email: "joao.silva@empresa.com"},
		{ID: "2", Name: "Carlos Oliveira", Role: RoleSupervisor, Department: "Manutenção", Shift: ShiftA, Email: "carlos.oliveira@empresa.com"},
		{ID: "3", Name: "Admin User", Role: RoleAdmin, Department: "Administração", Shift: ShiftAdmin, Email: "admin@empresa.com"},
		{ID: "4", Name: "Maria Oliveira", Role: RoleCollaborator, Department: "Manutenção", Shift: ShiftB, Email: "maria.oliveira@empresa.com"},
		{ID: "5", Name: "Ana Carolina Souza", Role: RoleSafetyTechnician, Department: "Segurança do Trabalho", Shift: ShiftC, Email: "ana.souza@empresa.com"},
		{ID: "6", Name: "Almoxarife", Role: RoleWarehouse, Department: "Logística", Shift: ShiftD, Email: "almoxarife@empresa.com"},
		{ID: "7", Name: "Ricardo Pereira", Role: RoleReservist, Department: "Logística", Shift: ShiftE, Email: "ricardo.pereira@empresa.com"},
	}
	for _, u := range seed {
		u.PasswordHash = hash
		if err := d.Add(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
