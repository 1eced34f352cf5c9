package user

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"eventscore/internal/apperr"
	"eventscore/internal/auth"
	"eventscore/internal/mailer"
)

var (
	whitespaceRe = regexp.MustCompile(`\s`)
	nameRe       = regexp.MustCompile(`^[a-zA-Z\s]*$`)
)

// SignupInput carries the raw signup request fields. The optional foreign
// keys arrive as strings and are parsed to integers; blank values persist
// as NULL.
type SignupInput struct {
	Username      string
	Email         string
	Password      string
	FirstName     string
	LastName      string
	YearLevelType string
	StrandID      string
	CourseID      string
	TesdaCourseID string
}

// SignupResult is the outcome of a successful signup.
type SignupResult struct {
	User     User
	Student  Student
	FullName string
}

// Service implements the account operations: signup, login, password reset.
type Service struct {
	store      Store
	mail       mailer.Mailer
	bcryptCost int
}

// NewService builds a service.
func NewService(store Store, mail mailer.Mailer, bcryptCost int) *Service {
	return &Service{store: store, mail: mail, bcryptCost: bcryptCost}
}

// Signup validates the input, creates the user with role student and its
// linked student profile, and returns the created records.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	if whitespaceRe.MatchString(in.Email) || whitespaceRe.MatchString(in.Password) {
		return nil, apperr.New(apperr.Validation, "Email and password cannot contain spaces.")
	}
	if !nameRe.MatchString(in.FirstName) || !nameRe.MatchString(in.LastName) {
		return nil, apperr.New(apperr.Validation, "First name and last name can only contain letters and spaces.")
	}

	taken, err := s.store.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup existing user: %w", err)
	}
	if taken {
		return nil, apperr.New(apperr.Conflict, "User already exists!")
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := User{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
		Role:     RoleStudent,
	}
	st := Student{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		YearLevelType: in.YearLevelType,
		StrandID:      parseOptionalID(in.StrandID),
		CourseID:      parseOptionalID(in.CourseID),
		TesdaCourseID: parseOptionalID(in.TesdaCourseID),
	}
	if err := s.store.CreateWithStudent(ctx, &u, &st); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &SignupResult{
		User:     u,
		Student:  st,
		FullName: in.FirstName + " " + in.LastName,
	}, nil
}

// Login verifies credentials and returns the user.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.Auth, "The email or password you entered is incorrect.")
	}
	if !auth.CheckPassword(u.Password, password) {
		return nil, apperr.New(apperr.Auth, "Wrong password!")
	}
	return u, nil
}

// ResetPassword generates a random replacement password, persists its hash,
// and mails the plaintext to the account's address.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return apperr.New(apperr.NotFound, "User with this email does not exist")
	}

	newPassword, err := auth.RandomPassword()
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePassword(ctx, email, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.mail.SendNewPassword(ctx, u.Email, newPassword); err != nil {
		return fmt.Errorf("send password mail: %w", err)
	}
	return nil
}

func parseOptionalID(raw string) *int64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
