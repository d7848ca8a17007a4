package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"chat-backend/config/logger"
	"chat-backend/dto/req"
	"chat-backend/dto/res"
	"chat-backend/entity"
	"chat-backend/repository"
)

type ChatRoomUsecaseImpl struct {
	*repository.ChatRoomRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewChatRoomUsecase(chatRoomRepository *repository.ChatRoomRepository, validate *validator.Validate, DB *gorm.DB, log *logger.AppLogger) Crud[req.ChatRoomRequest, req.ChatRoomUpdateRequest, res.ChatRoomResponse] {
	return &ChatRoomUsecaseImpl{ChatRoomRepository: chatRoomRepository, Validate: validate, DB: DB, Log: log}
}

func (uc *ChatRoomUsecaseImpl) List(ctx context.Context) ([]res.ChatRoomResponse, error) {
	var rooms []entity.ChatRoom
	if err := uc.ChatRoomRepository.FindAllWithUsers(ctx, uc.DB, &rooms); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to list chat rooms")
		return nil, err
	}
	return mapChatRooms(rooms), nil
}

func (uc *ChatRoomUsecaseImpl) ListPage(ctx context.Context, offset, limit int) ([]res.ChatRoomResponse, int64, error) {
	var rooms []entity.ChatRoom
	count, err := uc.ChatRoomRepository.FindPageWithUsers(ctx, uc.DB, &rooms, offset, limit)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to page chat rooms")
		return nil, 0, err
	}
	return mapChatRooms(rooms), count, nil
}

func (uc *ChatRoomUsecaseImpl) Create(ctx context.Context, principalID uint, request *req.ChatRoomRequest) (res.ChatRoomResponse, error) {
	if err := wrapValidation(uc.Validate.Struct(request)); err != nil {
		return res.ChatRoomResponse{}, err
	}
	if *request.Name == "" {
		return res.ChatRoomResponse{}, newFieldError("name", msgBlank)
	}

	room := entity.ChatRoom{
		Name:        *request.Name,
		IsGroupChat: *request.IsGroupChat,
	}
	if err := uc.ChatRoomRepository.Save(ctx, uc.DB, &room); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to save chat room")
		return res.ChatRoomResponse{}, err
	}

	uc.Log.Http.Info.Info().Uint("roomId", room.ID).Str("name", room.Name).Msg("chat room created")
	return toChatRoomResponse(room), nil
}

func (uc *ChatRoomUsecaseImpl) Get(ctx context.Context, id uint) (res.ChatRoomResponse, error) {
	var room entity.ChatRoom
	if err := uc.ChatRoomRepository.FindByIdWithUsers(ctx, uc.DB, &room, id); err != nil {
		return res.ChatRoomResponse{}, err
	}
	return toChatRoomResponse(room), nil
}

func (uc *ChatRoomUsecaseImpl) Update(ctx context.Context, id uint, request *req.ChatRoomUpdateRequest, partial bool) (res.ChatRoomResponse, error) {
	var room entity.ChatRoom
	if err := uc.ChatRoomRepository.FindById(ctx, uc.DB, &room, id); err != nil {
		return res.ChatRoomResponse{}, err
	}

	if !partial {
		if request.Name == nil {
			return res.ChatRoomResponse{}, newFieldError("name", msgRequired)
		}
		if request.IsGroupChat == nil {
			return res.ChatRoomResponse{}, newFieldError("is_group_chat", msgRequired)
		}
	}
	if request.Name != nil {
		if *request.Name == "" {
			return res.ChatRoomResponse{}, newFieldError("name", msgBlank)
		}
		if utf8.RuneCountInString(*request.Name) > 255 {
			return res.ChatRoomResponse{}, newFieldError("name", msgMaxLength("255"))
		}
		room.Name = *request.Name
	}
	if request.IsGroupChat != nil {
		room.IsGroupChat = *request.IsGroupChat
	}

	if err := uc.ChatRoomRepository.Update(ctx, uc.DB, &room); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("roomId", id).Msg("failed to update chat room")
		return res.ChatRoomResponse{}, err
	}

	var updated entity.ChatRoom
	if err := uc.ChatRoomRepository.FindByIdWithUsers(ctx, uc.DB, &updated, id); err != nil {
		return res.ChatRoomResponse{}, err
	}
	return toChatRoomResponse(updated), nil
}

func (uc *ChatRoomUsecaseImpl) Delete(ctx context.Context, id uint) error {
	var room entity.ChatRoom
	if err := uc.ChatRoomRepository.FindById(ctx, uc.DB, &room, id); err != nil {
		return err
	}
	if err := uc.ChatRoomRepository.Delete(ctx, uc.DB, &room); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("roomId", id).Msg("failed to delete chat room")
		return err
	}
	uc.Log.Http.Info.Info().Uint("roomId", id).Msg("chat room deleted")
	return nil
}

func toChatRoomResponse(room entity.ChatRoom) res.ChatRoomResponse {
	users := make([]res.UserResponse, 0, len(room.Users))
	for _, user := range room.Users {
		users = append(users, res.UserResponse{ID: user.ID, Username: user.Username, Email: user.Email})
	}
	return res.ChatRoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		IsGroupChat: room.IsGroupChat,
		Users:       users,
	}
}

func mapChatRooms(rooms []entity.ChatRoom) []res.ChatRoomResponse {
	responses := make([]res.ChatRoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, toChatRoomResponse(room))
	}
	return responses
}
