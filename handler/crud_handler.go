package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"chat-backend/dto/res"
	"chat-backend/usecase"
)

// Pagination is a per-resource policy. Resources without one return a
// bare JSON array from their list endpoint and ignore paging params.
type Pagination struct {
	DefaultSize int
	MaxSize     int
}

// CrudHandler serves the five standard operations for one resource. The
// entity-specific validation and mapping live behind the Crud usecase;
// this layer only does HTTP.
type CrudHandler[C any, U any, R any] struct {
	Usecase usecase.Crud[C, U, R]
	Log     *logrus.Logger
	Pages   *Pagination
}

func NewCrudHandler[C any, U any, R any](crudUsecase usecase.Crud[C, U, R], log *logrus.Logger, pages *Pagination) *CrudHandler[C, U, R] {
	return &CrudHandler[C, U, R]{Usecase: crudUsecase, Log: log, Pages: pages}
}

func (handler *CrudHandler[C, U, R]) List(c *fiber.Ctx) error {
	if handler.Pages == nil {
		items, err := handler.Usecase.List(c.Context())
		if err != nil {
			return handler.renderError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(items)
	}

	// a page param that is not a positive integer is an invalid page,
	// not a silent fallback to the first one
	page := 1
	if rawPage := c.Query("page"); rawPage != "" {
		parsed, err := strconv.Atoi(rawPage)
		if err != nil || parsed < 1 {
			return invalidPage(c)
		}
		page = parsed
	}
	size := c.QueryInt("page_size", handler.Pages.DefaultSize)
	if size < 1 {
		size = handler.Pages.DefaultSize
	}
	if size > handler.Pages.MaxSize {
		size = handler.Pages.MaxSize
	}

	items, count, err := handler.Usecase.ListPage(c.Context(), (page-1)*size, size)
	if err != nil {
		return handler.renderError(c, err)
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		return invalidPage(c)
	}

	envelope := res.PageResponse[R]{
		Count:   count,
		Results: items,
	}
	if page < totalPages {
		envelope.Next = pageURL(c, page+1, size)
	}
	if page > 1 {
		envelope.Previous = pageURL(c, page-1, size)
	}
	return c.Status(fiber.StatusOK).JSON(envelope)
}

func (handler *CrudHandler[C, U, R]) Create(c *fiber.Ctx) error {
	request := new(C)
	if err := c.BodyParser(request); err != nil {
		handler.Log.WithError(err).Warn("malformed request body")
		return c.Status(fiber.StatusBadRequest).JSON(res.DetailResponse{Detail: "Malformed request body."})
	}

	item, err := handler.Usecase.Create(c.Context(), principalID(c), request)
	if err != nil {
		return handler.renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *CrudHandler[C, U, R]) Get(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		return notFound(c)
	}

	item, err := handler.Usecase.Get(c.Context(), id)
	if err != nil {
		return handler.renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

func (handler *CrudHandler[C, U, R]) Update(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		return notFound(c)
	}

	request := new(U)
	if err := c.BodyParser(request); err != nil {
		handler.Log.WithError(err).Warn("malformed request body")
		return c.Status(fiber.StatusBadRequest).JSON(res.DetailResponse{Detail: "Malformed request body."})
	}

	partial := c.Method() == fiber.MethodPatch
	item, err := handler.Usecase.Update(c.Context(), id, request, partial)
	if err != nil {
		return handler.renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

func (handler *CrudHandler[C, U, R]) Delete(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		return notFound(c)
	}

	if err := handler.Usecase.Delete(c.Context(), id); err != nil {
		return handler.renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *CrudHandler[C, U, R]) renderError(c *fiber.Ctx, err error) error {
	var validationError *usecase.ValidationError
	if errors.As(err, &validationError) {
		return c.Status(fiber.StatusBadRequest).JSON(validationError.Fields)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c)
	}

	handler.Log.WithError(err).Error("unhandled storage error")
	return c.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
		Status:     fiber.ErrInternalServerError.Message,
		StatusCode: fiber.StatusInternalServerError,
		Error:      "Internal server error.",
	})
}

func parseId(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	return uint(id), err
}

func principalID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(res.DetailResponse{Detail: "Not found."})
}

func invalidPage(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(res.DetailResponse{Detail: "Invalid page."})
}

func pageURL(c *fiber.Ctx, page, size int) *string {
	url := fmt.Sprintf("%s%s?page=%d", c.BaseURL(), c.Path(), page)
	if c.Query("page_size") != "" {
		url = fmt.Sprintf("%s&page_size=%d", url, size)
	}
	return &url
}
