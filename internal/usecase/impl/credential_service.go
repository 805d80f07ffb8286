// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"botauth/config"
	deliverycontext "botauth/internal/delivery/context"
	"botauth/internal/domain/entity"
	"botauth/internal/domain/repository"
	"botauth/internal/domain/service"
	"botauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	secrets           service.SecretGenerator
	bootstrapPassword string
	logger            *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Secrets   service.SecretGenerator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives all dependencies as interfaces.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	bootstrap := ""
	if params.Config != nil && params.Config.Auth != nil {
		bootstrap = params.Config.Auth.BootstrapPassword
	}

	return &credentialService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		secrets:           params.Secrets,
		bootstrapPassword: bootstrap,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrRotateSuperuserPassword generates a new password and stores its hash,
// creating the config row on first use.
func (srv *credentialService) CreateOrRotateSuperuserPassword(ctx context.Context) (*usecase.RotationOutput, error) {
	password, err := srv.secrets.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate superuser password")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash superuser password")
	}

	var stored *entity.Config
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		stored, err = srv.storeHash(ctx, repoFactory.ConfigRepo(), hash)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to rotate superuser password", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute password rotation transaction")
	}

	srv.log(ctx).Info("Superuser password rotated", slog.Uint64("configID", uint64(stored.ID)))

	return &usecase.RotationOutput{Config: stored, Password: password}, nil
}

// CheckSuperuserPassword compares candidate with the stored hash, or with the bootstrap
// secret while nothing has been stored.
func (srv *credentialService) CheckSuperuserPassword(ctx context.Context, candidate string) (bool, error) {
	var valid bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		valid, err = srv.checkPassword(ctx, repoFactory.ConfigRepo(), candidate)

		return err
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute password check transaction")
	}

	return valid, nil
}

// GetOrCreateUser returns the stored user for ext, creating a non-superuser record if absent.
func (srv *credentialService) GetOrCreateUser(ctx context.Context, ext entity.ExternalUser) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = srv.getOrCreateUser(ctx, repoFactory.UserRepo(), ext)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute get-or-create user transaction")
	}

	return user, nil
}

// UpdateToSuperuserIfPasswordCorrect grants or revokes superuser status depending on the password.
// The flag is written on every call, so a wrong password demotes an existing superuser.
func (srv *credentialService) UpdateToSuperuserIfPasswordCorrect(
	ctx context.Context,
	candidate string,
	ext entity.ExternalUser,
) (bool, error) {
	var granted bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.getOrCreateUser(ctx, userRepo, ext)
		if err != nil {
			return err
		}

		granted, err = srv.checkPassword(ctx, repoFactory.ConfigRepo(), candidate)
		if err != nil {
			return err
		}

		user.IsSuperuser = granted
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update superuser flag")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update superuser status", slog.Int64("userID", ext.ID), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to execute superuser update transaction")
	}

	srv.log(ctx).Info("Superuser status updated", slog.Int64("userID", ext.ID), slog.Bool("isSuperuser", granted))

	return granted, nil
}

// ChangeSuperuserPassword lets an existing superuser replace the shared password.
func (srv *credentialService) ChangeSuperuserPassword(
	ctx context.Context,
	ext entity.ExternalUser,
	newPassword string,
) (string, error) {
	changed := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, ext.ID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsSuperuser {
			return nil
		}

		hash, err := srv.hasher.Hash(newPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash superuser password")
		}

		if _, err := srv.storeHash(ctx, repoFactory.ConfigRepo(), hash); err != nil {
			return err
		}
		changed = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change superuser password", slog.Int64("userID", ext.ID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to execute password change transaction")
	}

	if !changed {
		srv.log(ctx).Warn("Superuser password change denied", slog.Int64("userID", ext.ID))

		return "", nil
	}

	srv.log(ctx).Info("Superuser password changed", slog.Int64("userID", ext.ID))

	return newPassword, nil
}

// SuperuserPasswordStatus reports whether a password has been stored yet.
func (srv *credentialService) SuperuserPasswordStatus(ctx context.Context) (*usecase.StatusOutput, error) {
	var rows int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		rows, err = repoFactory.ConfigRepo().Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count config rows")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute status transaction")
	}

	return &usecase.StatusOutput{
		Configured:       rows > 0,
		BootstrapEnabled: srv.bootstrapPassword != "",
		ConfigRows:       rows,
	}, nil
}

func (srv *credentialService) checkPassword(ctx context.Context, configRepo repository.ConfigRepository, candidate string) (bool, error) {
	cfg, err := configRepo.Current(ctx)
	if errors.Is(err, repository.ErrConfigNotFound) {
		return srv.matchesBootstrap(candidate), nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to load superuser password")
	}

	valid, err := srv.hasher.Check(candidate, cfg.SuperuserPassword)
	if err != nil {
		return false, errors.Wrap(err, "failed to verify superuser password")
	}

	return valid, nil
}

// matchesBootstrap never accepts anything when the bootstrap secret is empty.
func (srv *credentialService) matchesBootstrap(candidate string) bool {
	if srv.bootstrapPassword == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(srv.bootstrapPassword)) == 1
}

func (srv *credentialService) getOrCreateUser(ctx context.Context, userRepo repository.UserRepository, ext entity.ExternalUser) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, ext.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}

	user = entity.NewUser(ext)
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Debug("Registered new chat user", slog.Int64("userID", user.ID))

	return user, nil
}

func (srv *credentialService) storeHash(ctx context.Context, configRepo repository.ConfigRepository, hash string) (*entity.Config, error) {
	cfg, err := configRepo.Current(ctx)
	if errors.Is(err, repository.ErrConfigNotFound) {
		cfg = &entity.Config{SuperuserPassword: hash}
		if err := configRepo.Create(ctx, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to create config")
		}

		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	cfg.SuperuserPassword = hash
	if err := configRepo.Update(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to update config")
	}

	return cfg, nil
}
