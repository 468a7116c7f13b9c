// seed_demo genera un script SQL con datos de demostración: departamentos,
// perfiles, usuarios, actividades en varios estados y el catálogo de premios.
//
// Uso: go run ./cmd/seed_demo [password-demo]
// Por defecto la contraseña de los usuarios demo es "impacto123".
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type demoProfile struct {
	id, employeeID, name, deptID string
}

func main() {
	password := "impacto123"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("-- Datos de demostración. Generado por cmd/seed_demo.\n\n")

	// Departamentos
	deptRRHH := uuid.New().String()
	deptTI := uuid.New().String()
	b.WriteString("INSERT INTO departments (id, org_department_id, name, carbon_budget) VALUES\n")
	fmt.Fprintf(&b, "  ('%s', 'hr-10', 'Recursos Humanos', 10000),\n", deptRRHH)
	fmt.Fprintf(&b, "  ('%s', 'it-20', 'Tecnología', 10000)\n", deptTI)
	b.WriteString("ON CONFLICT (org_department_id) DO NOTHING;\n\n")

	// Perfiles
	profiles := []demoProfile{
		{uuid.New().String(), "emp-001", "Ana Gómez", deptRRHH},
		{uuid.New().String(), "emp-002", "Luis Pérez", deptTI},
		{uuid.New().String(), "emp-003", "Marta Ríos", deptTI},
	}
	b.WriteString("INSERT INTO employee_profiles (id, employee_id, name, department_id) VALUES\n")
	for i, p := range profiles {
		sep := ","
		if i == len(profiles)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s')%s\n", p.id, p.employeeID, p.name, p.deptID, sep)
	}
	b.WriteString("ON CONFLICT (employee_id) DO NOTHING;\n\n")

	// Usuarios (password demo compartida, hasheada con bcrypt)
	b.WriteString("INSERT INTO users (id, email, password_hash, name, role, profile_id) VALUES\n")
	fmt.Fprintf(&b, "  ('%s', 'admin@impacto.demo', '%s', 'Admin Demo', 'admin', ''),\n", uuid.New().String(), hash)
	fmt.Fprintf(&b, "  ('%s', 'comite@impacto.demo', '%s', 'Comité Demo', 'comite', ''),\n", uuid.New().String(), hash)
	fmt.Fprintf(&b, "  ('%s', 'ana@impacto.demo', '%s', 'Ana Gómez', 'empleado', '%s')\n", uuid.New().String(), hash, profiles[0].id)
	b.WriteString("ON CONFLICT (email) DO NOTHING;\n\n")

	// Actividades en varios estados; las aprobadas requieren un refresh del
	// dashboard para materializar los agregados.
	today := time.Now()
	type demoActivity struct {
		name, profile, dept, desc, status string
		daysAgo                           int
		hours                             float64
		donation                          string
	}
	acts := []demoActivity{
		{"Limpieza de playa", profiles[0].id, deptRRHH, "Beach cleanup with the local community", "approved", 7, 10, "100.00"},
		{"Reforestación urbana", profiles[1].id, deptTI, "Tree planting day in the city park", "approved", 120, 6, "0.00"},
		{"Tutorías escolares", profiles[2].id, deptTI, "After school tutoring program", "submitted", 3, 4, "50.00"},
		{"Donación banco de alimentos", profiles[0].id, deptRRHH, "Food drive for the local food bank", "draft", 1, 2, "200.00"},
	}
	b.WriteString("INSERT INTO activities (id, name, profile_id, department_id, date, hours, donation_amount, description, status) VALUES\n")
	for i, a := range acts {
		sep := ","
		if i == len(acts)-1 {
			sep = ""
		}
		date := today.AddDate(0, 0, -a.daysAgo).Format("2006-01-02")
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s', %g, %s, '%s', '%s')%s\n",
			uuid.New().String(), a.name, a.profile, a.dept, date, a.hours, a.donation, a.desc, a.status, sep)
	}
	b.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	// Catálogo de premios
	b.WriteString("INSERT INTO rewards (id, name, description, points_cost) VALUES\n")
	fmt.Fprintf(&b, "  ('%s', 'Día libre', 'Un día libre adicional', 500),\n", uuid.New().String())
	fmt.Fprintf(&b, "  ('%s', 'Bono de almuerzo', 'Bono para almuerzo de equipo', 150),\n", uuid.New().String())
	fmt.Fprintf(&b, "  ('%s', 'Donación a nombre del empleado', 'La empresa dona a una causa elegida', 300)\n", uuid.New().String())
	b.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	outPath := "internal/infrastructure/postgres/migrations/002_seed_demo.sql"
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %s (%d departamentos, %d perfiles, %d actividades)\n", outPath, 2, len(profiles), len(acts))
}
