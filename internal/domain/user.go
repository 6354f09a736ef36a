package domain

import (
	"fmt"
	"strings"
)

// User validation errors
var (
	ErrUserNameBlank      = fmt.Errorf("%w: user name cannot be blank", ErrInvalidArgument)
	ErrUserAgeNotPositive = fmt.Errorf("%w: user age must be greater than zero", ErrInvalidArgument)
)

// User is a person who can enroll in programs.
// It is immutable once constructed; two Users are equal when all of their
// fields are, but roster membership only compares IDs.
type User struct {
	id   string
	name string
	age  int
}

// NewUser creates a User with a caller-supplied identifier.
// Returns an error wrapping ErrInvalidArgument if validation fails, in which
// case the returned User is the zero value and must not be used.
func NewUser(id, name string, age int) (User, error) {
	user := User{
		id:   id,
		name: name,
		age:  age,
	}

	if err := user.Validate(); err != nil {
		return User{}, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u User) Validate() error {
	if u.id == "" {
		return ErrEmptyID
	}

	if strings.TrimSpace(u.name) == "" {
		return ErrUserNameBlank
	}

	if u.age <= 0 {
		return ErrUserAgeNotPositive
	}

	return nil
}

// ID returns the user's identifier.
func (u User) ID() string { return u.id }

// Name returns the user's display name.
func (u User) Name() string { return u.name }

// Age returns the user's age in years.
func (u User) Age() int { return u.age }
