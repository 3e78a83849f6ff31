package repository

import (
	"context"
	"errors"

	"github.com/raidhealth/patient-platform/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no patient exists for the given identifier.
	ErrNotFound = errors.New("patient not found")
	// ErrDuplicateEmail is returned when another patient already holds the email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// PatientRepository defines the interface for patient-related database operations.
type PatientRepository interface {
	Create(ctx context.Context, p *entity.Patient) error
	GetByID(ctx context.Context, id string) (*entity.Patient, error)
	List(ctx context.Context) ([]*entity.Patient, error)
	Update(ctx context.Context, p *entity.Patient) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcluding(ctx context.Context, email, id string) (bool, error)
}
