package routes

import (
	"github.com/gofiber/fiber/v2"

	"chat-backend/dto/req"
	"chat-backend/dto/res"
	"chat-backend/handler"
	"chat-backend/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	ChatRoomHandler *handler.CrudHandler[req.ChatRoomRequest, req.ChatRoomUpdateRequest, res.ChatRoomResponse]
	MessageHandler  *handler.CrudHandler[req.MessageRequest, req.MessageUpdateRequest, res.MessageResponse]
	ReactionHandler *handler.CrudHandler[req.ReactionRequest, req.ReactionUpdateRequest, res.ReactionResponse]
	ReplyHandler    *handler.CrudHandler[req.ReplyRequest, req.ReplyUpdateRequest, res.ReplyResponse]
}

func (rc *ConfigRoute) GetRoute() {
	rc.App.Use(rc.Middleware.WithPrincipal)

	rc.GetAuthRoute()

	Resource(rc.App, "chatrooms", rc.ChatRoomHandler)
	Resource(rc.App, "messages", rc.MessageHandler)
	Resource(rc.App, "reactions", rc.ReactionHandler)
	Resource(rc.App, "replies", rc.ReplyHandler)
}

func (rc *ConfigRoute) GetAuthRoute() {
	auth := rc.App.Group("/auth")
	auth.Post("/register/", rc.AuthHandler.RegisterUser)
	auth.Post("/login/", rc.AuthHandler.LoginUser)
	auth.Get("/me/", rc.Middleware.JWTProtected, rc.AuthHandler.GetAccount)
	auth.Put("/me/", rc.Middleware.JWTProtected, rc.AuthHandler.UpdateAccount)
}

// Resource mounts the standard collection and detail routes for one
// CRUD handler under /<path>/.
func Resource[C any, U any, R any](app *fiber.App, path string, crud *handler.CrudHandler[C, U, R]) {
	app.Get("/"+path+"/", crud.List)
	app.Post("/"+path+"/", crud.Create)
	app.Get("/"+path+"/:id/", crud.Get)
	app.Put("/"+path+"/:id/", crud.Update)
	app.Patch("/"+path+"/:id/", crud.Update)
	app.Delete("/"+path+"/:id/", crud.Delete)
}
