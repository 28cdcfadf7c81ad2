package postgres

import (
	"context"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/errors"
	"placeswipe/internal/infra/persistence/model"
	"placeswipe/internal/infra/persistence/postgres/query"

	"gorm.io/gen"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository with the generated query builder.
type userRepository struct {
	q *query.Query
}

// NewUserRepository returns the GORM user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{q: query.Use(db)}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, repo.q.UserModel.ID.Eq(id))
}

func (repo *userRepository) FindByExternalAuthID(ctx context.Context, externalAuthID string) (*entity.User, error) {
	return repo.findOne(ctx, repo.q.UserModel.ExternalAuthID.Eq(externalAuthID))
}

func (repo *userRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).Where(cond).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(userM), nil
}

// Create inserts the user. Duplicate identity or email maps to ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserAlreadyExists, "create user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		ExternalAuthID: data.ExternalAuthID,
		Email:          data.Email,
		FullName:       data.FullName,
		Role:           entity.Role(data.Role),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		ExternalAuthID: data.ExternalAuthID,
		Email:          data.Email,
		FullName:       data.FullName,
		Role:           data.Role.String(),
	}
}
