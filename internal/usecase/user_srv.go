package usecase

import (
	"context"
	"fmt"
	"time"

	"laundry-hub/internal/data/entity"
	"laundry-hub/internal/data/repository"
	"laundry-hub/internal/dto/request"
	"laundry-hub/internal/dto/response"
	"laundry-hub/pkg/apperr"
	"laundry-hub/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Build user entity. Username and email uniqueness is not enforced,
	// matching the persisted data this service inherited.
	now := time.Now().UTC()
	user := &entity.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// 4. Save user
	id, err := us.userRepo.Insert(ctx, user)
	if err != nil {
		us.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", req.Username),
		)
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	us.log.Info("User created",
		zap.String("user_id", id.Hex()),
		zap.String("username", user.Username),
	)

	userResp := response.UserToResponse(user)
	return &userResp, nil
}
