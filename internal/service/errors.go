package service

import "errors"

var (
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrPasswordTooShort is returned for passwords under five characters.
	ErrPasswordTooShort = errors.New("password must be at least 5 characters")

	// ErrInvalidCredentials covers bad email, bad password and inactive
	// accounts uniformly so a caller cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyName is returned when creating a tag or ingredient without a name.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrNotFound is returned for unknown ids and for rows owned by another
	// user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrUnknownReference is returned when a recipe references a tag or
	// ingredient id that does not exist.
	ErrUnknownReference = errors.New("referenced tag or ingredient does not exist")

	// ErrInvalidImage is returned when an uploaded payload does not decode
	// as an image.
	ErrInvalidImage = errors.New("uploaded file is not a valid image")
)
