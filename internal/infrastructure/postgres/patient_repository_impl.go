package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raidhealth/patient-platform/internal/domain/entity"
	"github.com/raidhealth/patient-platform/internal/domain/repository"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
// The patients table enforces email uniqueness at the storage layer, so two
// concurrent creates racing past the existence check still cannot both commit.
const uniqueViolation = "23505"

type PatientRepository struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

func (r *PatientRepository) Create(ctx context.Context, p *entity.Patient) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO patients (name, email, address, date_of_birth, registered_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Email, p.Address, p.DateOfBirth, p.RegisteredDate)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return mapUnique(err)
	}
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	p := &entity.Patient{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, address, date_of_birth, registered_date, created_at, updated_at
		FROM patients
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Address,
		&p.DateOfBirth, &p.RegisteredDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, address, date_of_birth, registered_date, created_at, updated_at
		FROM patients
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Patient, 0)
	for rows.Next() {
		p := &entity.Patient{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Address,
			&p.DateOfBirth, &p.RegisteredDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PatientRepository) Update(ctx context.Context, p *entity.Patient) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE patients
		SET name = $1, email = $2, address = $3, date_of_birth = $4, registered_date = $5, updated_at = $6
		WHERE id = $7
	`, p.Name, p.Email, p.Address, p.DateOfBirth, p.RegisteredDate, p.UpdatedAt, p.ID)
	if err != nil {
		return mapUnique(err)
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PatientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *PatientRepository) ExistsByEmailExcluding(ctx context.Context, email, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1 AND id <> $2)
	`, email, id).Scan(&exists)
	return exists, err
}

func mapUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateEmail
	}
	return err
}

var _ repository.PatientRepository = (*PatientRepository)(nil)
