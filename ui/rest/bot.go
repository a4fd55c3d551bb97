package rest

import (
	"github.com/gofiber/fiber/v2"
	domainBot "github.com/zanyar-dev/botarium/domains/bot"
	"github.com/zanyar-dev/botarium/pkg/utils"
	"github.com/zanyar-dev/botarium/ui/rest/middleware"
)

type Bot struct {
	Service domainBot.IBotUsecase
	// PerPage is the public default page size when the request does
	// not specify a limit; MaxPerPage caps the requested limit so a
	// dashboard bulk fetch cannot page the whole table at once.
	PerPage    int
	MaxPerPage int
}

func InitRestBot(app fiber.Router, service domainBot.IBotUsecase, perPage, maxPerPage int) Bot {
	if perPage <= 0 {
		perPage = 10
	}
	if maxPerPage < perPage {
		maxPerPage = 100
	}
	rest := Bot{Service: service, PerPage: perPage, MaxPerPage: maxPerPage}
	app.Get("/bots", rest.List)
	app.Get("/bots/home", rest.Home)
	app.Get("/bots/:id", rest.GetByID)
	app.Post("/bots", rest.Create)
	app.Put("/bots/:id/toggle", rest.ToggleStatus)
	app.Put("/bots/:id", rest.Update)
	app.Delete("/bots/:id", rest.Delete)
	return rest
}

func (controller *Bot) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", controller.PerPage)
	if limit > controller.MaxPerPage {
		limit = controller.MaxPerPage
	}

	filter := domainBot.BotFilter{
		Page:   c.QueryInt("page", 1),
		Limit:  limit,
		Search: c.Query("search"),
		Status: c.Query("status", domainBot.StatusFilterAll),
	}

	result, err := controller.Service.List(c.UserContext(), middleware.LocaleFrom(c), filter)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch bots",
		Results: result,
	})
}

func (controller *Bot) Home(c *fiber.Ctx) error {
	bots, err := controller.Service.Home(c.UserContext(), middleware.LocaleFrom(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch home bots",
		Results: bots,
	})
}

func (controller *Bot) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	b, err := controller.Service.GetByID(c.UserContext(), middleware.LocaleFrom(c), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch bot",
		Results: b,
	})
}

func (controller *Bot) Create(c *fiber.Ctx) error {
	var request domainBot.CreateBotRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	created, err := controller.Service.Create(c.UserContext(), middleware.IdentityFrom(c), request)
	utils.PanicIfNeeded(err)

	return c.Status(fiber.StatusCreated).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Bot created successfully",
		Results: created,
	})
}

func (controller *Bot) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var request domainBot.UpdateBotRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	updated, err := controller.Service.Update(c.UserContext(), middleware.IdentityFrom(c), id, request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Bot updated successfully",
		Results: updated,
	})
}

func (controller *Bot) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	err := controller.Service.Delete(c.UserContext(), middleware.IdentityFrom(c), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Bot deleted successfully",
	})
}

type toggleStatusRequest struct {
	CurrentStatus domainBot.Status `json:"currentStatus"`
}

func (controller *Bot) ToggleStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var request toggleStatusRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	toggled, err := controller.Service.ToggleStatus(c.UserContext(), middleware.IdentityFrom(c), id, request.CurrentStatus)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Bot status changed to " + string(toggled.Status),
		Results: toggled,
	})
}
