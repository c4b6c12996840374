package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"github.com/mikiasgoitom/Postboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("bad email")
	}
	return nil
}

func (fakeValidator) ValidateNickname(nickname string) error {
	if nickname == "" {
		return errors.New("nickname is required")
	}
	return nil
}

func (fakeValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

func newUserFixture() (*memStore, *fakeUserRepo, *usecase.UserUsecase) {
	store := newMemStore()
	repo := &fakeUserRepo{store: store}
	return store, repo, usecase.NewUserUsecase(repo, fakeHasher{}, nopLogger{}, fakeValidator{}, &seqUUID{})
}

func TestSignUp(t *testing.T) {
	store, _, uc := newUserFixture()

	user, err := uc.SignUp(context.Background(), " Alice@Example.com ", "alice", "Alice A", "Password1!")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed:Password1!", user.PasswordHash)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Alice A", *user.Name)
	assert.Contains(t, store.users, user.ID)
}

func TestSignUp_Duplicates(t *testing.T) {
	_, _, uc := newUserFixture()
	_, err := uc.SignUp(context.Background(), "alice@example.com", "alice", "", "Password1!")
	require.NoError(t, err)

	_, err = uc.SignUp(context.Background(), "ALICE@example.com", "other", "", "Password1!")
	assert.ErrorIs(t, err, usecase.ErrDuplicateUser)

	_, err = uc.SignUp(context.Background(), "bob@example.com", "alice", "", "Password1!")
	assert.ErrorIs(t, err, usecase.ErrDuplicateUser)
}

func TestSignUp_RaceOnUniqueIndex(t *testing.T) {
	_, repo, uc := newUserFixture()
	repo.failCreate = contract.ErrDuplicateKey

	_, err := uc.SignUp(context.Background(), "alice@example.com", "alice", "", "Password1!")
	assert.ErrorIs(t, err, usecase.ErrDuplicateUser)
}

func TestSignUp_InvalidInput(t *testing.T) {
	_, _, uc := newUserFixture()

	_, err := uc.SignUp(context.Background(), "not-an-email", "alice", "", "Password1!")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	_, err = uc.SignUp(context.Background(), "a@b.com", "  ", "", "Password1!")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	_, err = uc.SignUp(context.Background(), "a@b.com", "alice", "", "short")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestCheckDuplicate(t *testing.T) {
	_, _, uc := newUserFixture()
	_, err := uc.SignUp(context.Background(), "alice@example.com", "alice", "", "Password1!")
	require.NoError(t, err)

	taken, err := uc.CheckDuplicate(context.Background(), entity.DuplicateFieldNickname, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = uc.CheckDuplicate(context.Background(), entity.DuplicateFieldEmail, "Alice@Example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = uc.CheckDuplicate(context.Background(), entity.DuplicateFieldNickname, "bob")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = uc.CheckDuplicate(context.Background(), entity.DuplicateField("password"), "x")
	assert.ErrorIs(t, err, usecase.ErrInvalidField)
}
