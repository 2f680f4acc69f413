package controller

import (
	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/pkg/serverutils"
	"wa-bazaar-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IListingController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Expire(ctx *fiber.Ctx) error
}

type listingController struct {
	listingService service.IListingService
}

func NewListingController(listingService service.IListingService) IListingController {
	return &listingController{
		listingService: listingService,
	}
}

func (c *listingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/listing/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("expire", c.Expire)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *listingController) List(ctx *fiber.Ctx) error {
	var req dto.ListListingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.listingService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Listings", res))
}

func (c *listingController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid listing id")
	}

	res, err := c.listingService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Listing detail", res))
}

func (c *listingController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid listing id")
	}

	if err := c.listingService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Listing deleted", nil))
}

// Expire manually triggers the expiry batch, mostly for ops.
func (c *listingController) Expire(ctx *fiber.Ctx) error {
	expired, err := c.listingService.ExpireDue(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Expiry batch complete", dto.ExpireListingsResponse{Expired: expired}))
}
