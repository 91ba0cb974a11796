package application

import (
	"context"
	"fmt"

	"github.com/mmacedo-dev/bustrip/internal/monitoring"
	"github.com/mmacedo-dev/bustrip/internal/user/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

type createUserHandler struct {
	users    domain.UserRepository
	hasher   domain.PasswordHasher
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string]
	logger   pkgApp.AppLogger
}

func NewCreateUserHandler(users domain.UserRepository, hasher domain.PasswordHasher, eventBus pkgApp.EventBus[pkgDomain.Event[string], string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateUserData], CreateUserData] {
	return &createUserHandler{
		users:    users,
		hasher:   hasher,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (h *createUserHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateUserData]) error {
	data := command.Payload()

	checks := []struct {
		find    func() error
		message string
	}{
		{func() error { _, err := h.users.FindByEmail(ctx, data.Email); return err }, "this email is already registered"},
		{func() error { _, err := h.users.FindByCPF(ctx, data.CPF); return err }, "this CPF is already registered"},
		{func() error { _, err := h.users.FindByTelephone(ctx, data.Telephone); return err }, "this telephone is already registered"},
	}
	for _, check := range checks {
		err := check.find()
		switch {
		case err == nil:
			return pkgDomain.NewConflictError(check.message)
		case !pkgDomain.IsKind(err, pkgDomain.KindNotFound):
			return err
		}
	}

	hash, err := h.hasher.Hash(data.Password)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error hashing password", err, nil)
		return err
	}

	user := domain.User{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: hash,
		CPF:          data.CPF,
		Telephone:    data.Telephone,
		IsAdmin:      data.IsAdmin,
	}

	saved, err := h.users.Save(ctx, user)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error saving user", err, map[string]interface{}{"email": user.Email})
		return err
	}

	event := NewUserCreatedEvent(fmt.Sprintf("user %s registered", saved.Email))
	if err := h.eventBus.Publish(ctx, event); err != nil {
		return err
	}

	h.logger.Info(ctx, "user registered", map[string]interface{}{"id": saved.ID, "email": saved.Email})
	return nil
}

type loginHandler struct {
	users  domain.UserRepository
	hasher domain.PasswordHasher
	tokens domain.TokenManager
}

func NewLoginHandler(users domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenManager) pkgApp.QueryHandler[pkgDomain.Query[LoginData], LoginData, Session] {
	return &loginHandler{users: users, hasher: hasher, tokens: tokens}
}

func (h *loginHandler) Handle(ctx context.Context, query pkgDomain.Query[LoginData]) (Session, error) {
	data := query.Payload()

	user, err := h.users.FindByEmail(ctx, data.Email)
	if pkgDomain.IsKind(err, pkgDomain.KindNotFound) {
		return Session{}, pkgDomain.NewNotFoundError("incorrect email")
	}
	if err != nil {
		return Session{}, err
	}

	if !h.hasher.Compare(user.PasswordHash, data.Password) {
		return Session{}, pkgDomain.NewUnauthorizedError("incorrect password")
	}

	token, err := h.tokens.Sign(domain.TokenClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token}, nil
}

type updateTelephoneHandler struct {
	users  domain.UserRepository
	logger pkgApp.AppLogger
}

func NewUpdateTelephoneHandler(users domain.UserRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[UpdateTelephoneData], UpdateTelephoneData] {
	return &updateTelephoneHandler{users: users, logger: logger}
}

func (h *updateTelephoneHandler) Handle(ctx context.Context, command pkgDomain.Command[UpdateTelephoneData]) error {
	data := command.Payload()

	existing, err := h.users.FindByTelephone(ctx, data.Telephone)
	switch {
	case err == nil && existing.ID != data.ID:
		return pkgDomain.NewConflictError("this telephone is already registered")
	case err != nil && !pkgDomain.IsKind(err, pkgDomain.KindNotFound):
		return err
	}

	if _, err := h.users.UpdateTelephone(ctx, data.ID, data.Telephone); err != nil {
		return err
	}

	h.logger.Info(ctx, "telephone updated", map[string]interface{}{"id": data.ID})
	return nil
}

type updatePasswordHandler struct {
	users  domain.UserRepository
	hasher domain.PasswordHasher
	logger pkgApp.AppLogger
}

func NewUpdatePasswordHandler(users domain.UserRepository, hasher domain.PasswordHasher, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[UpdatePasswordData], UpdatePasswordData] {
	return &updatePasswordHandler{users: users, hasher: hasher, logger: logger}
}

func (h *updatePasswordHandler) Handle(ctx context.Context, command pkgDomain.Command[UpdatePasswordData]) error {
	data := command.Payload()

	user, err := h.users.FindByID(ctx, data.ID)
	if err != nil {
		return err
	}

	if !h.hasher.Compare(user.PasswordHash, data.OldPassword) {
		return pkgDomain.NewUnauthorizedError("incorrect password")
	}

	hash, err := h.hasher.Hash(data.NewPassword)
	if err != nil {
		return err
	}

	if err := h.users.UpdatePassword(ctx, data.ID, hash); err != nil {
		return err
	}

	h.logger.Info(ctx, "password updated", map[string]interface{}{"id": data.ID})
	return nil
}

type deleteUserHandler struct {
	users  domain.UserRepository
	logger pkgApp.AppLogger
}

func NewDeleteUserHandler(users domain.UserRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[DeleteUserData], DeleteUserData] {
	return &deleteUserHandler{users: users, logger: logger}
}

func (h *deleteUserHandler) Handle(ctx context.Context, command pkgDomain.Command[DeleteUserData]) error {
	data := command.Payload()

	if _, err := h.users.FindByID(ctx, data.ID); err != nil {
		return err
	}

	if err := h.users.Delete(ctx, data.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting user", err, map[string]interface{}{"id": data.ID})
		return err
	}

	h.logger.Info(ctx, "user deleted", map[string]interface{}{"id": data.ID})
	return nil
}

type findUsersHandler struct {
	users domain.UserRepository
}

func NewFindUsersHandler(users domain.UserRepository) pkgApp.QueryHandler[pkgDomain.Query[FindUsersData], FindUsersData, []domain.User] {
	return &findUsersHandler{users: users}
}

func (h *findUsersHandler) Handle(ctx context.Context, _ pkgDomain.Query[FindUsersData]) ([]domain.User, error) {
	return h.users.FindAll(ctx)
}

type findUserByIDHandler struct {
	users domain.UserRepository
}

func NewFindUserByIDHandler(users domain.UserRepository) pkgApp.QueryHandler[pkgDomain.Query[FindUserByIDData], FindUserByIDData, domain.User] {
	return &findUserByIDHandler{users: users}
}

func (h *findUserByIDHandler) Handle(ctx context.Context, query pkgDomain.Query[FindUserByIDData]) (domain.User, error) {
	return h.users.FindByID(ctx, query.Payload().ID)
}

type userCreatedEventHandler struct {
	logger pkgApp.AppLogger
}

func NewUserCreatedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[string], string] {
	return &userCreatedEventHandler{logger: logger}
}

func (h *userCreatedEventHandler) Handle(ctx context.Context, event pkgDomain.Event[string]) error {
	monitoring.UsersRegistered.Inc()
	h.logger.Info(ctx, "event received", map[string]interface{}{
		"event_name": event.EventName(),
		"payload":    event.Payload(),
	})
	return nil
}
