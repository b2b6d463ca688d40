package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/contactmansi/Recipe-Box/internal/models"
	"github.com/contactmansi/Recipe-Box/internal/service"
	"github.com/contactmansi/Recipe-Box/internal/testhelpers"
)

func registerUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	authSvc := service.NewAuthService(db, "test-secret")
	user, err := authSvc.Register(email, "password123", "")
	require.NoError(t, err)
	return user
}

func TestProfileUpdateName(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userSvc := service.NewUserService(db)
	user := registerUser(t, db, "profile@example.com")

	name := "New Name"
	updated, err := userSvc.Update(user.ID, service.ProfileUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.PasswordHash, updated.PasswordHash)
}

func TestProfileUpdatePasswordRehashes(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	userSvc := service.NewUserService(db)
	user := registerUser(t, db, "rehash@example.com")

	newPassword := "newpassword"
	updated, err := userSvc.Update(user.ID, service.ProfileUpdate{Password: &newPassword})
	require.NoError(t, err)
	assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)

	_, err = authSvc.Login("rehash@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = authSvc.Login("rehash@example.com", "newpassword")
	assert.NoError(t, err)
}

func TestProfileUpdateShortPassword(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userSvc := service.NewUserService(db)
	user := registerUser(t, db, "shortupd@example.com")

	pw := "abc"
	_, err := userSvc.Update(user.ID, service.ProfileUpdate{Password: &pw})
	assert.ErrorIs(t, err, service.ErrPasswordTooShort)
}

func TestProfileUpdateNothing(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userSvc := service.NewUserService(db)
	user := registerUser(t, db, "noop@example.com")

	updated, err := userSvc.Update(user.ID, service.ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, user.Email, updated.Email)
}
