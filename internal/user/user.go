package user

import (
	"context"
	"time"
)

// Roles assignable to a user account.
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// User is a persisted account record. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID        int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Student is the 1:1 profile attached to a user with role student. The
// optional foreign keys are stored as NULL when absent.
type Student struct {
	ID            int64     `json:"student_id"`
	UserID        int64     `json:"user_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	YearLevelType string    `json:"year_level_type"`
	StrandID      *int64    `json:"strand_id"`
	CourseID      *int64    `json:"course_id"`
	TesdaCourseID *int64    `json:"tesda_course_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store is the persistence contract for user accounts. The store guarantees
// username/email uniqueness and the user<->student foreign key.
type Store interface {
	// FindByEmail returns (nil, nil) when no user has the email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// ExistsByUsernameOrEmail reports whether either value is taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	// CreateWithStudent atomically inserts the user and its student profile,
	// filling in the generated ids.
	CreateWithStudent(ctx context.Context, u *User, s *Student) error
	// UpdatePassword replaces the stored hash for the given email.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
