package usecase

import (
	"context"

	"chat-backend/dto/req"
	"chat-backend/dto/res"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error)
	Login(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error)
	GetAccount(ctx context.Context, userID uint) (res.RegisterResponse, error)
	UpdateAccount(ctx context.Context, userID uint, request *req.EditAccountRequest) (res.RegisterResponse, error)
}
