package services

import (
	"testing"

	"github.com/devboardhq/devboard/internal/auth"
	"github.com/devboardhq/devboard/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(setupTestDB(t), auth.NewTokenManager("test-secret"))
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newUserService(t)

	resp, err := svc.Register(&dtos.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "Ada@Example.com",
		Password: "secret123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)

	login, err := svc.Login(&dtos.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	// The embedded role must match the registration role.
	claims, err := svc.Tokens.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterDefaultsRoleToUser(t *testing.T) {
	svc := newUserService(t)

	resp, err := svc.Register(&dtos.RegisterRequest{Name: "Bo", Email: "bo@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.User.Role)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(&dtos.RegisterRequest{Name: "First", Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(&dtos.RegisterRequest{Name: "Second", Email: "DUP@EXAMPLE.COM", Password: "secret456"})
	require.Error(t, err)
	svcErr := &Error{}
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindConflict, svcErr.Kind)
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(t)

	cases := []struct {
		name string
		req  dtos.RegisterRequest
	}{
		{"short name", dtos.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"}},
		{"bad email", dtos.RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "secret123"}},
		{"short password", dtos.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "12345"}},
		{"bad role", dtos.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123", Role: "superuser"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(&tc.req)
			require.Error(t, err)
			svcErr := &Error{}
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, KindInvalid, svcErr.Kind)
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(&dtos.RegisterRequest{Name: "Carol", Email: "carol@example.com", Password: "secret123"})
	require.NoError(t, err)

	// Same generic message whether the email or the password is wrong.
	_, unknownErr := svc.Login(&dtos.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	_, badPassErr := svc.Login(&dtos.LoginRequest{Email: "carol@example.com", Password: "wrong-pass"})

	for _, err := range []error{unknownErr, badPassErr} {
		require.Error(t, err)
		svcErr := &Error{}
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, KindUnauthorized, svcErr.Kind)
		assert.Equal(t, "Invalid email or password", svcErr.Msg)
	}
}
