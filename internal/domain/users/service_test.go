package users

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/eventdesk/server/internal/auth"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID int64
	byID   map[int64]User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, byID: make(map[int64]User)}
}

func (r *fakeRepo) Create(_ context.Context, user User) (User, error) {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.byID[user.ID] = user
	return user, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *fakeRepo) Update(_ context.Context, user User) (User, error) {
	if _, ok := r.byID[user.ID]; !ok {
		return User{}, ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.byID[user.ID] = user
	return user, nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	manager := auth.NewJWTManager("test-secret", time.Hour, "eventdesk")
	return NewService(repo, manager), repo
}

func signupInput() SignupInput {
	return SignupInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "difference-engine",
	}
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newTestService()

	signedUp, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)
	require.NotEmpty(t, signedUp.Token)

	payload, err := json.Marshal(signedUp.User)
	require.NoError(t, err)
	require.NotContains(t, string(payload), "password")

	loggedIn, err := svc.Login(context.Background(), LoginInput{
		Email:    "ada@example.com",
		Password: "difference-engine",
	})
	require.NoError(t, err)

	manager := auth.NewJWTManager("test-secret", time.Hour, "eventdesk")
	claims, err := manager.Validate(loggedIn.Token)
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(signedUp.User.ID, 10), claims.Subject)
	require.Equal(t, "ada@example.com", claims.Email)
	require.Equal(t, "Ada Lovelace", claims.FullName)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	dup := signupInput()
	dup.Password = "completely-different"
	_, err = svc.Signup(context.Background(), dup)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), LoginInput{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "difference-engine",
	})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticatedUserVanished(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	delete(repo.byID, result.User.ID)

	_, err = svc.AuthenticatedUser(context.Background(), result.User.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateEmailUniqueness(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	second, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Grace Hopper",
		Email:    "grace@example.com",
		Password: "cobol-forever",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.User.ID, UpdateInput{
		Email: &first.User.Email,
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdatePasswordRehash(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	newPassword := "analytical-engine"
	_, err = svc.Update(context.Background(), result.User.ID, UpdateInput{Password: &newPassword})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "difference-engine"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: newPassword})
	require.NoError(t, err)
}
