package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// UserRole defines what a CRM user is allowed to manage
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleAgent UserRole = "AGENT"
)

// User represents a CRM user (an agent or an admin)
type User struct {
	ID         int       `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"-"`
	PassHash   string    `json:"-" db:"password_hash"`
	FullName   string    `json:"full_name,omitempty" db:"full_name"`
	Role       UserRole  `json:"role" db:"role"`
	EmployeeID int       `json:"employee_id,omitempty" db:"employee_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// UserRegistration represents user registration data
type UserRegistration struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	FullName   string `json:"full_name,omitempty"`
	EmployeeID int    `json:"employee_id,omitempty"`
}

// UserLogin represents user login data
type UserLogin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the JWT token response
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// ValidateRegistration validates user registration data
func (u *UserRegistration) ValidateRegistration() error {
	// Validate username
	if len(u.Username) < 3 || len(u.Username) > 50 {
		return errors.New("username must be between 3 and 50 characters")
	}

	// Validate email
	if !leadEmailPattern.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	// Validate password
	if len(u.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hasUppercase := regexp.MustCompile(`[A-Z]`).MatchString(u.Password)
	hasLowercase := regexp.MustCompile(`[a-z]`).MatchString(u.Password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(u.Password)

	if !hasUppercase || !hasLowercase || !hasNumber {
		return errors.New("password must contain at least one uppercase letter, one lowercase letter, and one number")
	}

	// Sanitize inputs
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	u.FullName = strings.TrimSpace(u.FullName)

	return nil
}

// ToUser converts UserRegistration to User
func (u *UserRegistration) ToUser() *User {
	return &User{
		Username:   u.Username,
		Email:      u.Email,
		Password:   u.Password,
		FullName:   u.FullName,
		Role:       UserRoleAgent,
		EmployeeID: u.EmployeeID,
	}
}
