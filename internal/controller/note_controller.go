package controller

import (
	"notesy-be/internal/dto"
	"notesy-be/internal/pkg/serverutils"
	"notesy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put("", c.Update)
	h.Delete("", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	owner := ctx.Locals("email").(string)

	res, err := c.noteService.List(ctx.Context(), owner)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.Response[[]*dto.NoteResponse]{Data: []*dto.NoteResponse{}, Message: err.Error()})
	}
	if res == nil {
		res = []*dto.NoteResponse{}
	}

	return ctx.JSON(serverutils.SuccessResponse("Notes fetched successfully", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	owner := ctx.Locals("email").(string)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), owner, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.Response[[]*dto.NoteResponse]{Data: []*dto.NoteResponse{}, Message: err.Error()})
	}

	return ctx.JSON(serverutils.SuccessResponse("Note added successfully", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	owner := ctx.Locals("email").(string)

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.Update(ctx.Context(), owner, &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.MessageResponse{Message: err.Error()})
	}

	return ctx.JSON(serverutils.MessageResponse{Message: "Note changed successfully"})
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	owner := ctx.Locals("email").(string)

	var req dto.DeleteNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), owner, req.NoteId); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.MessageResponse{Message: err.Error()})
	}

	return ctx.JSON(serverutils.MessageResponse{Message: "Note deleted successfully"})
}
