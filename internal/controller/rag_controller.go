package controller

import (
	"motherlanka-be/internal/dto"
	"motherlanka-be/internal/pkg/serverutils"
	"motherlanka-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRagController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	Rebuild(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type ragController struct {
	chatbotService service.IChatbotService
}

func NewRagController(chatbotService service.IChatbotService) IRagController {
	return &ragController{
		chatbotService: chatbotService,
	}
}

// RegisterRoutes mounts /rag behind the given middlewares (JWT + admin role).
func (c *ragController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/rag")
	for _, m := range middlewares {
		h.Use(m)
	}
	h.Post("/rebuild", c.Rebuild)
	h.Get("/status", c.Status)
}

func (c *ragController) Rebuild(ctx *fiber.Ctx) error {
	if ctx.QueryBool("async", false) {
		if err := c.chatbotService.QueueRebuild(ctx.UserContext(), "admin:async"); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "RAG rebuild failed")
		}
		return ctx.Status(fiber.StatusAccepted).JSON(dto.RagRebuildQueuedResponse{Ok: true, Queued: true})
	}

	res, err := c.chatbotService.RebuildIndex(ctx.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "RAG rebuild failed")
	}
	return ctx.JSON(res)
}

func (c *ragController) Status(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.Status(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("RAG index status", res))
}
