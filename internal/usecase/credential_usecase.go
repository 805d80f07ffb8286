// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"botauth/internal/domain/entity"
)

// --- Output DTOs ---

// RotationOutput carries the freshly generated superuser password.
// Password is the only copy of the plaintext; it is not persisted anywhere.
type RotationOutput struct {
	Config   *entity.Config
	Password string
}

// StatusOutput describes the state of the superuser credential.
type StatusOutput struct {
	// Configured is false while no password has been stored and the bootstrap secret applies.
	Configured bool
	// BootstrapEnabled reports whether a non-empty bootstrap secret is configured.
	BootstrapEnabled bool
	ConfigRows       int64
}

// CredentialUsecase defines the superuser credential operations used by the bot and operators.
// This is the contract that the delivery layer (e.g., API handlers, CLI) will depend on.
type CredentialUsecase interface {
	// CreateOrRotateSuperuserPassword replaces the stored password with a newly generated one.
	CreateOrRotateSuperuserPassword(ctx context.Context) (*RotationOutput, error)

	// CheckSuperuserPassword reports whether candidate is the current superuser password.
	CheckSuperuserPassword(ctx context.Context, candidate string) (bool, error)

	// GetOrCreateUser returns the stored user, registering it on first sight.
	GetOrCreateUser(ctx context.Context, ext entity.ExternalUser) (*entity.User, error)

	// UpdateToSuperuserIfPasswordCorrect sets the user's superuser flag to the result of the password check.
	UpdateToSuperuserIfPasswordCorrect(ctx context.Context, candidate string, ext entity.ExternalUser) (bool, error)

	// ChangeSuperuserPassword stores newPassword when the user is a superuser.
	// It returns newPassword on success and an empty string when the user is not allowed.
	ChangeSuperuserPassword(ctx context.Context, ext entity.ExternalUser, newPassword string) (string, error)

	// SuperuserPasswordStatus reports whether a password has been stored.
	SuperuserPasswordStatus(ctx context.Context) (*StatusOutput, error)
}
