package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mmacedo-dev/bustrip/internal/user/application"
	"github.com/mmacedo-dev/bustrip/internal/user/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	"github.com/mmacedo-dev/bustrip/pkg/infrastructure/httpjson"
)

const requestTimeout = 10 * time.Second

type UserHTTPHandler struct {
	createBus          pkgApp.CommandBus[pkgDomain.Command[application.CreateUserData], application.CreateUserData]
	updateTelephoneBus pkgApp.CommandBus[pkgDomain.Command[application.UpdateTelephoneData], application.UpdateTelephoneData]
	updatePasswordBus  pkgApp.CommandBus[pkgDomain.Command[application.UpdatePasswordData], application.UpdatePasswordData]
	deleteBus          pkgApp.CommandBus[pkgDomain.Command[application.DeleteUserData], application.DeleteUserData]
	loginBus           pkgApp.QueryBus[pkgDomain.Query[application.LoginData], application.LoginData, application.Session]
	findAllBus         pkgApp.QueryBus[pkgDomain.Query[application.FindUsersData], application.FindUsersData, []domain.User]
	findByIDBus        pkgApp.QueryBus[pkgDomain.Query[application.FindUserByIDData], application.FindUserByIDData, domain.User]
	admin              func(http.Handler) http.Handler
}

func NewUserHTTPHandler(
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreateUserData], application.CreateUserData],
	updateTelephoneBus pkgApp.CommandBus[pkgDomain.Command[application.UpdateTelephoneData], application.UpdateTelephoneData],
	updatePasswordBus pkgApp.CommandBus[pkgDomain.Command[application.UpdatePasswordData], application.UpdatePasswordData],
	deleteBus pkgApp.CommandBus[pkgDomain.Command[application.DeleteUserData], application.DeleteUserData],
	loginBus pkgApp.QueryBus[pkgDomain.Query[application.LoginData], application.LoginData, application.Session],
	findAllBus pkgApp.QueryBus[pkgDomain.Query[application.FindUsersData], application.FindUsersData, []domain.User],
	findByIDBus pkgApp.QueryBus[pkgDomain.Query[application.FindUserByIDData], application.FindUserByIDData, domain.User],
	admin func(http.Handler) http.Handler,
) *UserHTTPHandler {
	return &UserHTTPHandler{
		createBus:          createBus,
		updateTelephoneBus: updateTelephoneBus,
		updatePasswordBus:  updatePasswordBus,
		deleteBus:          deleteBus,
		loginBus:           loginBus,
		findAllBus:         findAllBus,
		findByIDBus:        findByIDBus,
		admin:              admin,
	}
}

func (h *UserHTTPHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var data application.CreateUserData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("invalid request body"))
		return
	}
	if data.Name == "" || data.Email == "" || data.Password == "" || data.CPF == "" || data.Telephone == "" {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("name, email, password, cpf and telephone are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.createBus.Dispatch(ctx, application.NewCreateUserCommand(data)); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, map[string]interface{}{
		"message": "user registered",
	})
}

func (h *UserHTTPHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var data application.LoginData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("invalid request body"))
		return
	}
	if data.Email == "" || data.Password == "" {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("email and password are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := h.loginBus.Dispatch(ctx, application.NewLoginQuery(data))
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, session)
}

func (h *UserHTTPHandler) HandleUpdateTelephone(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	var data application.UpdateTelephoneData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("invalid request body"))
		return
	}
	if data.Telephone == "" {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("telephone is required"))
		return
	}
	data.ID = id

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.updateTelephoneBus.Dispatch(ctx, application.NewUpdateTelephoneCommand(data)); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]interface{}{"message": "telephone updated"})
}

func (h *UserHTTPHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	var data application.UpdatePasswordData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("invalid request body"))
		return
	}
	if data.OldPassword == "" || data.NewPassword == "" {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("oldPassword and newPassword are required"))
		return
	}
	data.ID = id

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.updatePasswordBus.Dispatch(ctx, application.NewUpdatePasswordCommand(data)); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]interface{}{"message": "password updated"})
}

func (h *UserHTTPHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.deleteBus.Dispatch(ctx, application.NewDeleteUserCommand(application.DeleteUserData{ID: id})); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]interface{}{"message": "user deleted"})
}

func (h *UserHTTPHandler) HandleFindUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, err := h.findAllBus.Dispatch(ctx, application.NewFindUsersQuery())
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, users)
}

func (h *UserHTTPHandler) HandleFindUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := h.findByIDBus.Dispatch(ctx, application.NewFindUserByIDQuery(application.FindUserByIDData{ID: id}))
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, user)
}

func (h *UserHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/users", h.HandleCreateUser)
	router.Post("/users/login", h.HandleLogin)
	router.Patch("/users/{userID}/telephone", h.HandleUpdateTelephone)
	router.Patch("/users/{userID}/password", h.HandleUpdatePassword)
	router.With(h.admin).Delete("/users/{userID}", h.HandleDeleteUser)
	router.With(h.admin).Get("/users", h.HandleFindUsers)
	router.Get("/users/{userID}", h.HandleFindUserByID)
}
