package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmacedo-dev/bustrip/internal/user/application"
	"github.com/mmacedo-dev/bustrip/internal/user/domain"
	"github.com/mmacedo-dev/bustrip/internal/user/infrastructure"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
)

// UserSlice wires the account handlers onto their buses and exposes the
// HTTP surface.
type UserSlice struct {
	httpHandler *infrastructure.UserHTTPHandler
}

func NewUserSlice(
	users domain.UserRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenManager,
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string],
	logger pkgApp.AppLogger,
	admin func(http.Handler) http.Handler,
) *UserSlice {
	createBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateUserData], application.CreateUserData]()
	updateTelephoneBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.UpdateTelephoneData], application.UpdateTelephoneData]()
	updatePasswordBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.UpdatePasswordData], application.UpdatePasswordData]()
	deleteBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.DeleteUserData], application.DeleteUserData]()
	loginBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.LoginData], application.LoginData, application.Session]()
	findAllBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindUsersData], application.FindUsersData, []domain.User]()
	findByIDBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindUserByIDData], application.FindUserByIDData, domain.User]()

	createBus.RegisterHandler("CreateUser", application.NewCreateUserHandler(users, hasher, eventBus, logger))
	updateTelephoneBus.RegisterHandler("UpdateTelephone", application.NewUpdateTelephoneHandler(users, logger))
	updatePasswordBus.RegisterHandler("UpdatePassword", application.NewUpdatePasswordHandler(users, hasher, logger))
	deleteBus.RegisterHandler("DeleteUser", application.NewDeleteUserHandler(users, logger))
	loginBus.RegisterHandler("Login", application.NewLoginHandler(users, hasher, tokens))
	findAllBus.RegisterHandler("FindUsers", application.NewFindUsersHandler(users))
	findByIDBus.RegisterHandler("FindUserByID", application.NewFindUserByIDHandler(users))

	eventBus.RegisterHandler("UserCreated", application.NewUserCreatedEventHandler(logger))

	return &UserSlice{
		httpHandler: infrastructure.NewUserHTTPHandler(createBus, updateTelephoneBus, updatePasswordBus, deleteBus, loginBus, findAllBus, findByIDBus, admin),
	}
}

func (s *UserSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
