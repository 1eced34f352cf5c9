package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Repository persists users and students in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FindByEmail returns the user with the given email, or (nil, nil).
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, username, email, password, role, created_at
		FROM users WHERE email = $1
	`, email)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// ExistsByUsernameOrEmail reports whether either value is already taken.
func (r *Repository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
	`, username, email).Scan(&exists)
	return exists, err
}

// CreateWithStudent inserts the user and its student profile in one
// transaction so a student row never exists without its owning user.
func (r *Repository) CreateWithStudent(ctx context.Context, u *User, s *Student) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, created_at
	`, u.Username, u.Email, u.Password, u.Role)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	s.UserID = u.ID
	row = tx.QueryRowContext(ctx, `
		INSERT INTO students (user_id, first_name, last_name, year_level_type, strand_id, course_id, tesda_course_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING student_id, created_at
	`, s.UserID, s.FirstName, s.LastName, nullString(s.YearLevelType), s.StrandID, s.CourseID, s.TesdaCourseID)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("insert student: %w", err)
	}

	return tx.Commit()
}

// UpdatePassword replaces the stored hash for the given email.
func (r *Repository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET password = $2 WHERE email = $1
	`, email, passwordHash)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New("no user with email " + email)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
