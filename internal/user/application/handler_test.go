package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmacedo-dev/bustrip/internal/user/application"
	"github.com/mmacedo-dev/bustrip/internal/user/infrastructure"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

func registeredUser() application.CreateUserData {
	return application.CreateUserData{
		Name:      "Maria Souza",
		Email:     "maria@example.com",
		Password:  "s3cret",
		CPF:       "12345678900",
		Telephone: "+55 11 91234-5678",
	}
}

func newUserFixture(t *testing.T) (*infrastructure.InMemoryUserRepository, func(context.Context, pkgDomain.Command[application.CreateUserData]) error) {
	t.Helper()

	users := infrastructure.NewInMemoryUserRepository()
	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](nopLogger{})
	handler := application.NewCreateUserHandler(users, infrastructure.NewBcryptHasher(), eventBus, nopLogger{})
	return users, handler.Handle
}

func TestCreateUser_HashesPassword(t *testing.T) {
	users, create := newUserFixture(t)

	require.NoError(t, create(context.Background(), application.NewCreateUserCommand(registeredUser())))

	saved, err := users.FindByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, saved.PasswordHash)
	assert.NotEqual(t, "s3cret", saved.PasswordHash)
}

func TestCreateUser_Conflicts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*application.CreateUserData)
		want   string
	}{
		{"duplicate email", func(d *application.CreateUserData) {
			d.CPF = "00000000000"
			d.Telephone = "+55 11 90000-0000"
		}, "email is already registered"},
		{"duplicate CPF", func(d *application.CreateUserData) {
			d.Email = "other@example.com"
			d.Telephone = "+55 11 90000-0000"
		}, "CPF is already registered"},
		{"duplicate telephone", func(d *application.CreateUserData) {
			d.Email = "other@example.com"
			d.CPF = "00000000000"
		}, "telephone is already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, create := newUserFixture(t)
			require.NoError(t, create(context.Background(), application.NewCreateUserCommand(registeredUser())))

			data := registeredUser()
			tt.mutate(&data)
			err := create(context.Background(), application.NewCreateUserCommand(data))

			assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindConflict))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLogin(t *testing.T) {
	users, create := newUserFixture(t)
	require.NoError(t, create(context.Background(), application.NewCreateUserCommand(registeredUser())))

	tokens := infrastructure.NewJWTTokenManager("test-secret")
	login := application.NewLoginHandler(users, infrastructure.NewBcryptHasher(), tokens)

	t.Run("valid credentials", func(t *testing.T) {
		session, err := login.Handle(context.Background(), application.NewLoginQuery(application.LoginData{
			Email:    "maria@example.com",
			Password: "s3cret",
		}))

		require.NoError(t, err)
		claims, err := tokens.Verify(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", claims.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := login.Handle(context.Background(), application.NewLoginQuery(application.LoginData{
			Email:    "nobody@example.com",
			Password: "s3cret",
		}))

		assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindNotFound))
		assert.ErrorContains(t, err, "incorrect email")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := login.Handle(context.Background(), application.NewLoginQuery(application.LoginData{
			Email:    "maria@example.com",
			Password: "wrong",
		}))

		assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindUnauthorized))
		assert.ErrorContains(t, err, "incorrect password")
	})
}

func TestUpdatePassword(t *testing.T) {
	users, create := newUserFixture(t)
	require.NoError(t, create(context.Background(), application.NewCreateUserCommand(registeredUser())))

	saved, err := users.FindByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)

	hasher := infrastructure.NewBcryptHasher()
	handler := application.NewUpdatePasswordHandler(users, hasher, nopLogger{})

	err = handler.Handle(context.Background(), application.NewUpdatePasswordCommand(application.UpdatePasswordData{
		ID:          saved.ID,
		OldPassword: "wrong",
		NewPassword: "new-secret",
	}))
	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindUnauthorized))

	err = handler.Handle(context.Background(), application.NewUpdatePasswordCommand(application.UpdatePasswordData{
		ID:          saved.ID,
		OldPassword: "s3cret",
		NewPassword: "new-secret",
	}))
	require.NoError(t, err)

	updated, err := users.FindByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.True(t, hasher.Compare(updated.PasswordHash, "new-secret"))
}

func TestUpdateTelephone_ConflictWithOtherUser(t *testing.T) {
	users, create := newUserFixture(t)
	require.NoError(t, create(context.Background(), application.NewCreateUserCommand(registeredUser())))

	other := registeredUser()
	other.Email = "other@example.com"
	other.CPF = "00000000000"
	other.Telephone = "+55 11 90000-0000"
	require.NoError(t, create(context.Background(), application.NewCreateUserCommand(other)))

	saved, err := users.FindByEmail(context.Background(), "other@example.com")
	require.NoError(t, err)

	handler := application.NewUpdateTelephoneHandler(users, nopLogger{})
	err = handler.Handle(context.Background(), application.NewUpdateTelephoneCommand(application.UpdateTelephoneData{
		ID:        saved.ID,
		Telephone: "+55 11 91234-5678",
	}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindConflict))
}
