package postgres

import (
	"context"
	"database/sql"

	"medref/internal/model"
	"medref/internal/repository"
)

// DoctorPostgres is a PostgreSQL implementation of repository.DoctorRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DoctorPostgres struct {
	db *sql.DB
}

// NewDoctorPostgres creates a new DoctorPostgres repository.
func NewDoctorPostgres(db *sql.DB) *DoctorPostgres {
	return &DoctorPostgres{db: db}
}

var _ repository.DoctorRepository = (*DoctorPostgres)(nil)

// Create inserts a new doctor row and returns the stored record with the
// database-assigned id and timestamp.
func (r *DoctorPostgres) Create(ctx context.Context, doc *model.Doctor) (*model.Doctor, error) {
	const q = `
		INSERT INTO doctors (name, city, email, phone_number, speciality)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, city, email, phone_number, speciality, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.Name,
		doc.City,
		doc.Email,
		doc.PhoneNumber,
		string(doc.Speciality),
	)
	var out model.Doctor
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.City,
		&out.Email,
		&out.PhoneNumber,
		&out.Speciality,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByCityAndSpeciality fetches all doctors with an exact (city, speciality) match.
func (r *DoctorPostgres) FindByCityAndSpeciality(ctx context.Context, city string, speciality model.Speciality) ([]model.Doctor, error) {
	const q = `
		SELECT id, name, city, email, phone_number, speciality, created_at
		FROM doctors
		WHERE city = $1 AND speciality = $2
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q, city, string(speciality))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Doctor, 0)
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.City,
			&d.Email,
			&d.PhoneNumber,
			&d.Speciality,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Delete removes a doctor by ID. It does not return an error if the row does not exist.
func (r *DoctorPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM doctors WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	// Ignore rows affected; delete is idempotent by contract.
	_, _ = res.RowsAffected()
	return nil
}
