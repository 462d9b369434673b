package controller

import (
	"motherlanka-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Destinations(ctx *fiber.Ctx) error
	Stays(ctx *fiber.Ctx) error
	Experiences(ctx *fiber.Ctx) error
	Events(ctx *fiber.Ctx) error
}

type contentController struct {
	contentService service.IContentService
}

func NewContentController(contentService service.IContentService) IContentController {
	return &contentController{
		contentService: contentService,
	}
}

// Listings are public and returned as bare arrays.
func (c *contentController) RegisterRoutes(r fiber.Router) {
	r.Get("/destinations", c.Destinations)
	r.Get("/stays", c.Stays)
	r.Get("/experiences", c.Experiences)
	r.Get("/events", c.Events)
}

func (c *contentController) Destinations(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListDestinations(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *contentController) Stays(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListStays(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *contentController) Experiences(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListExperiences(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *contentController) Events(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListEvents(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
