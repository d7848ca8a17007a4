package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"chat-backend/dto/req"
	"chat-backend/dto/res"
	"chat-backend/entity"
	"chat-backend/repository"
	"chat-backend/security"
	"chat-backend/util"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthUsecaseImpl struct {
	*repository.UserRepository
	ProfileRepository *repository.ProfileRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(userRepository *repository.UserRepository, profileRepository *repository.ProfileRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{UserRepository: userRepository, ProfileRepository: profileRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) Register(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	if err := wrapValidation(uc.Validate.Struct(request)); err != nil {
		return res.RegisterResponse{}, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var existing entity.User
	err := uc.UserRepository.FindByUsername(ctx, trx, &existing, request.Username)
	if err == nil {
		return res.RegisterResponse{}, newFieldError("username", "A user with that username already exists.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.Logger.WithError(err).Error("failed to check username uniqueness")
		return res.RegisterResponse{}, err
	}

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.RegisterResponse{}, err
	}

	newUser := entity.User{
		Username: request.Username,
		Email:    request.Email,
		Password: hashPassword,
	}
	if err := uc.UserRepository.Save(ctx, trx, &newUser); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save user : %v", err)
		return res.RegisterResponse{}, err
	}

	// Profile provisioning runs inside the user-creation transaction, so a
	// user is never visible without its profile.
	if err := uc.ensureProfile(ctx, trx, newUser.ID); err != nil {
		uc.Logger.WithError(err).Errorf("failed to provision profile : %v", err)
		return res.RegisterResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit user : %v", err)
		return res.RegisterResponse{}, err
	}

	return res.RegisterResponse{
		ID:       newUser.ID,
		Username: newUser.Username,
		Email:    newUser.Email,
	}, nil
}

func (uc *AuthUsecaseImpl) Login(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	if err := wrapValidation(uc.Validate.Struct(request)); err != nil {
		return res.LoginResponse{}, err
	}

	var user entity.User
	if err := uc.UserRepository.FindByUsername(ctx, uc.DB, &user, request.Username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.LoginResponse{}, ErrInvalidCredentials
		}
		return res.LoginResponse{}, err
	}

	if !util.ComparePassword(user.Password, request.Password) {
		return res.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := uc.JWT.GenerateToken(&user)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to generate token = %v", err)
		return res.LoginResponse{}, err
	}

	return res.LoginResponse{Token: token}, nil
}

func (uc *AuthUsecaseImpl) GetAccount(ctx context.Context, userID uint) (res.RegisterResponse, error) {
	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userID); err != nil {
		return res.RegisterResponse{}, err
	}
	return res.RegisterResponse{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

func (uc *AuthUsecaseImpl) UpdateAccount(ctx context.Context, userID uint, request *req.EditAccountRequest) (res.RegisterResponse, error) {
	if err := wrapValidation(uc.Validate.Struct(request)); err != nil {
		return res.RegisterResponse{}, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, trx, &user, userID); err != nil {
		return res.RegisterResponse{}, err
	}

	user.Email = request.Email
	if err := uc.UserRepository.Update(ctx, trx, &user); err != nil {
		uc.Logger.WithError(err).Errorf("failed to update user : %v", err)
		return res.RegisterResponse{}, err
	}

	// Every save of a user account re-runs the create-if-missing step.
	if err := uc.ensureProfile(ctx, trx, user.ID); err != nil {
		return res.RegisterResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		return res.RegisterResponse{}, err
	}

	return res.RegisterResponse{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// ensureProfile creates the user's profile with default values if none
// exists yet. An existing profile is left untouched; "no profile found"
// is the normal first-save case, not an error.
func (uc *AuthUsecaseImpl) ensureProfile(ctx context.Context, db *gorm.DB, userID uint) error {
	var profile entity.Profile
	err := uc.ProfileRepository.FindByUserId(ctx, db, &profile, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return uc.ProfileRepository.Save(ctx, db, &entity.Profile{UserID: userID})
}
