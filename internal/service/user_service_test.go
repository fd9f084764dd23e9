package service

import (
	"context"
	"strings"
	"testing"

	dom "github.com/AlliAyobami/myToDo/internal/domain"
	"github.com/AlliAyobami/myToDo/internal/problem"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	nextID int64
	users  map[string]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]dom.User{}}
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	u, ok := r.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, username, passwordHash string) (dom.User, error) {
	if _, ok := r.users[username]; ok {
		// Same shape the users_username_key constraint produces.
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	}
	r.nextID++
	u := dom.User{ID: r.nextID, Username: username, PasswordHash: passwordHash}
	r.users[username] = u
	return u, nil
}

func TestRegisterAndValidateCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo())

	created, err := svc.Register(ctx, "  alice  ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username, "username is trimmed")
	assert.NotEqual(t, "s3cret", created.PasswordHash, "password is stored hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))

	got, err := svc.ValidateCredentials(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo())

	tests := []struct {
		name               string
		username, password string
	}{
		{"empty username", "", "pw"},
		{"blank username", "   ", "pw"},
		{"empty password", "bob", ""},
		{"username too long", strings.Repeat("a", maxUsernameLen+1), "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.password)
			p := problem.From(err)
			require.NotNil(t, p)
			assert.Equal(t, problem.TypeInvalid, p.Type)
		})
	}
}

func TestRegisterUsernameTaken(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other")
	p := problem.From(err)
	require.NotNil(t, p)
	assert.Equal(t, problem.TypeConflict, p.Type)
	assert.Equal(t, 409, p.Status)
}

func TestValidateCredentialsFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo())
	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	tests := []struct {
		name               string
		username, password string
	}{
		{"wrong password", "alice", "wrong"},
		{"unknown user", "nobody", "s3cret"},
		{"empty username", "", "s3cret"},
		{"empty password", "alice", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateCredentials(ctx, tt.username, tt.password)
			p := problem.From(err)
			require.NotNil(t, p)
			assert.Equal(t, problem.TypeUnauthorized, p.Type)
			assert.Equal(t, 401, p.Status)
		})
	}
}
