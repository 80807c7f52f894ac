package postgres

import (
	"context"
	"database/sql"

	"medref/internal/model"
	"medref/internal/repository"
)

// PatientPostgres is a PostgreSQL implementation of repository.PatientRepository.
type PatientPostgres struct {
	db *sql.DB
}

// NewPatientPostgres creates a new PatientPostgres repository.
func NewPatientPostgres(db *sql.DB) *PatientPostgres {
	return &PatientPostgres{db: db}
}

var _ repository.PatientRepository = (*PatientPostgres)(nil)

// Create inserts a new patient row and returns the stored record with the
// database-assigned id and timestamp.
func (r *PatientPostgres) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	const q = `
		INSERT INTO patients (name, city, email, phone_number, symptom)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, city, email, phone_number, symptom, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.Name,
		p.City,
		p.Email,
		p.PhoneNumber,
		string(p.Symptom),
	)
	var out model.Patient
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.City,
		&out.Email,
		&out.PhoneNumber,
		&out.Symptom,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single patient by its ID. sql.ErrNoRows passes through.
func (r *PatientPostgres) FindByID(ctx context.Context, id int64) (*model.Patient, error) {
	const q = `
		SELECT id, name, city, email, phone_number, symptom, created_at
		FROM patients
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var p model.Patient
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.City,
		&p.Email,
		&p.PhoneNumber,
		&p.Symptom,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a patient by ID. It does not return an error if the row does not exist.
func (r *PatientPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM patients WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	// Ignore rows affected; delete is idempotent by contract.
	_, _ = res.RowsAffected()
	return nil
}
