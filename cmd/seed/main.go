package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/raidhealth/patient-platform/config"
)

type seedPatient struct {
	name, email, address, dob, registered string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	patients := []seedPatient{
		{"John Doe", "john.doe@example.com", "123 Main St, Springfield", "1985-06-15", "2024-01-10"},
		{"Jane Smith", "jane.smith@example.com", "456 Elm St, Shelbyville", "1990-09-23", "2024-02-01"},
		{"Alice Johnson", "alice.johnson@example.com", "789 Oak St, Capital City", "1978-03-12", "2024-03-18"},
	}

	for _, p := range patients {
		var id string
		err := db.QueryRow(`
			INSERT INTO patients (name, email, address, date_of_birth, registered_date)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address
			RETURNING id
		`, p.name, p.email, p.address, p.dob, p.registered).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed patient %s: %v", p.email, err)
		}
		fmt.Printf("seeded patient: id=%s email=%s\n", id, p.email)
	}
}
