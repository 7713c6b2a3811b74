package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

type fakeUserStore struct {
	users map[string]models.User
}

func (f *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return models.User{}, models.ErrNotFound
}

func (f *fakeUserStore) Insert(_ context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) Replace(_ context.Context, user models.User) (models.User, error) {
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return models.ErrNotFound
}

func storeWithUser(t *testing.T, password string, active bool) (*fakeUserStore, models.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        "carlos.gomez@granja.com",
		Name:         "Carlos Gómez",
		PasswordHash: string(hash),
		Role:         models.RoleEncargado,
		Active:       active,
	}
	return &fakeUserStore{users: map[string]models.User{user.Email: user}}, user
}

func TestLoginAndParseTokenRoundTrip(t *testing.T) {
	store, user := storeWithUser(t, "secreto123", true)
	svc := NewService(store, "test-secret", time.Hour, nil)

	result, err := svc.Login(context.Background(), user.Email, "secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)

	actor, err := svc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, actor.UserID)
	assert.Equal(t, user.Name, actor.Name)
	assert.Equal(t, models.RoleEncargado, actor.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	store, user := storeWithUser(t, "secreto123", true)
	svc := NewService(store, "test-secret", time.Hour, nil)

	_, err := svc.Login(context.Background(), user.Email, "otra")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	store, _ := storeWithUser(t, "secreto123", true)
	svc := NewService(store, "test-secret", time.Hour, nil)

	_, err := svc.Login(context.Background(), "nadie@granja.com", "secreto123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	store, user := storeWithUser(t, "secreto123", false)
	svc := NewService(store, "test-secret", time.Hour, nil)

	_, err := svc.Login(context.Background(), user.Email, "secreto123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	store, _ := storeWithUser(t, "secreto123", true)
	svc := NewService(store, "test-secret", time.Hour, nil)

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	store, user := storeWithUser(t, "secreto123", true)
	issuer := NewService(store, "secret-a", time.Hour, nil)
	verifier := NewService(store, "secret-b", time.Hour, nil)

	result, err := issuer.Login(context.Background(), user.Email, "secreto123")
	require.NoError(t, err)

	_, err = verifier.ParseToken(result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	store, user := storeWithUser(t, "secreto123", true)
	svc := NewService(store, "test-secret", time.Hour, nil)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	result, err := svc.Login(context.Background(), user.Email, "secreto123")
	require.NoError(t, err)

	_, err = svc.ParseToken(result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
