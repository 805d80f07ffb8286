package relational

import (
	"context"
	"time"

	"botauth/internal/domain/entity"
	domainerrors "botauth/internal/domain/errors"
	"botauth/internal/domain/repository"
	"botauth/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// configRepository implements repository.ConfigRepository using GORM.
type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository is the constructor for configRepository.
func NewConfigRepository(db *gorm.DB) repository.ConfigRepository {
	return &configRepository{db: db}
}

// Current returns the row with the lowest id. Extra rows, if any were inserted out of band, are ignored.
func (repo *configRepository) Current(ctx context.Context) (*entity.Config, error) {
	var configM model.ConfigModel
	if err := repo.db.WithContext(ctx).Order("id ASC").First(&configM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load config")
	}

	return toConfigDomain(&configM), nil
}

// Create persists a new config row and fills in the generated id.
func (repo *configRepository) Create(ctx context.Context, cfg *entity.Config) error {
	configM := fromConfigDomain(cfg)

	if err := repo.db.WithContext(ctx).Create(configM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrConfigWriteFailed.WrapMessage("superuser password hash is required")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create config")
	}

	cfg.ID = configM.ID
	cfg.CreatedAt = configM.CreatedAt
	cfg.UpdatedAt = configM.UpdatedAt

	return nil
}

// Update overwrites the stored hash.
func (repo *configRepository) Update(ctx context.Context, cfg *entity.Config) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ConfigModel{}).
		Where("id = ?", cfg.ID).
		Updates(map[string]any{
			"superuser_password": cfg.SuperuserPassword,
			"updated_at":         now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update config")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	cfg.UpdatedAt = now

	return nil
}

// Count returns the number of physical config rows.
func (repo *configRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ConfigModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count configs")
	}

	return count, nil
}

func toConfigDomain(data *model.ConfigModel) *entity.Config {
	return &entity.Config{
		ID:                data.ID,
		SuperuserPassword: data.SuperuserPassword,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromConfigDomain(data *entity.Config) *model.ConfigModel {
	return &model.ConfigModel{
		ID:                data.ID,
		SuperuserPassword: data.SuperuserPassword,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
