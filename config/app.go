package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"chat-backend/config/common"
	"chat-backend/config/logger"
	"chat-backend/handler"
	"chat-backend/middleware"
	"chat-backend/repository"
	"chat-backend/routes"
	"chat-backend/security"
	"chat-backend/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *logger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := logrus.New()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newProfileRepository := repository.NewProfileRepository()
	newChatRoomRepository := repository.NewChatRoomRepository()
	newMessageRepository := repository.NewMessageRepository()
	newReactionRepository := repository.NewReactionRepository()
	newReplyRepository := repository.NewReplyRepository()

	newAuthUsecase := usecase.NewAuthUsecase(newUserRepository, newProfileRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT)
	newChatRoomUsecase := usecase.NewChatRoomUsecase(newChatRoomRepository, aC.Validate, aC.GetDB(), aC.AppLog)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newChatRoomRepository, aC.Validate, aC.GetDB(), aC.AppLog)
	newReactionUsecase := usecase.NewReactionUsecase(newReactionRepository, newMessageRepository, aC.Validate, aC.GetDB(), aC.AppLog)
	newReplyUsecase := usecase.NewReplyUsecase(newReplyRepository, newMessageRepository, aC.Validate, aC.GetDB(), aC.AppLog)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newChatRoomHandler := handler.NewCrudHandler(newChatRoomUsecase, aC.Logger, &handler.Pagination{DefaultSize: 10, MaxSize: 50})
	newMessageHandler := handler.NewCrudHandler(newMessageUsecase, aC.Logger, &handler.Pagination{DefaultSize: 30, MaxSize: 100})
	newReactionHandler := handler.NewCrudHandler(newReactionUsecase, aC.Logger, nil)
	newReplyHandler := handler.NewCrudHandler(newReplyUsecase, aC.Logger, nil)

	route := routes.ConfigRoute{
		App:             aC.App,
		Middleware:      aC.Middleware,
		AuthHandler:     newAuthHandler,
		ChatRoomHandler: newChatRoomHandler,
		MessageHandler:  newMessageHandler,
		ReactionHandler: newReactionHandler,
		ReplyHandler:    newReplyHandler,
	}
	route.GetRoute()
}
