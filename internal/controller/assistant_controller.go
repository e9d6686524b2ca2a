package controller

import (
	"banking-assistant-be/internal/dto"
	"banking-assistant-be/internal/pkg/serverutils"
	"banking-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	Support(ctx *fiber.Ctx) error
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("/chat", c.Chat)
	h.Post("/session", c.CreateSession)
	h.Get("/support/:bank", c.Support)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle chat", res))
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	res := c.service.CreateSession(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *assistantController) Support(ctx *fiber.Ctx) error {
	bank := ctx.Params("bank")

	res, found := c.service.Support(ctx.Context(), bank)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "No support reference for this bank")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get support reference", res))
}

// Root and Health are plain probes, no envelope.

func (c *assistantController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.RootResponse{
		Message: "Banking Assistant API is running!",
		Status:  "active",
		Version: "1.0",
	})
}

func (c *assistantController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Health(ctx.Context()))
}
