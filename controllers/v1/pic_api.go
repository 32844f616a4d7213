package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"pic-tools-backend/controllers"
	xlsexport "pic-tools-backend/lib/export/xls"
	pdfexport "pic-tools-backend/lib/export/pdf"
	picprovider "pic-tools-backend/lib/pic"
	authutils "pic-tools-backend/lib/utils/auth-utils"
	apimodels "pic-tools-backend/models/api"
	picapimodels "pic-tools-backend/models/api/pic"
)

type picApiController struct {
	controllers.BaseAPIController
}

func InitPicApiRouters(app fiber.Router) {
	controller := picApiController{}
	app.Route("pic", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("my", controller.my)
		router.Post("export/xls", controller.exportXls)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("export/pdf", controller.exportPdf)
		})
	})
}

// @Summary Создание заявки
// @Tags Заявка PIC
// @Description Создание заявки на изменение процесса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 picapimodels.PicCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic [post]
func (c *picApiController) create(ctx *fiber.Ctx) error {
	var payload picapimodels.PicCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := authutils.GetUserID(ctx)
	id, err := picprovider.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение по ИД
// @Tags Заявка PIC
// @Description Получение заявки по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=picapimodels.PicView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/{id} [get]
func (c *picApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := picprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags Заявка PIC
// @Description Обновление отклоненной заявки с повторной отправкой на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 picapimodels.PicEditData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/{id} [put]
func (c *picApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload picapimodels.PicEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = picprovider.Instance.Update(id, authutils.GetUserID(ctx), authutils.IsAdmin(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление
// @Tags Заявка PIC
// @Description Удаление отклоненной заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/{id} [delete]
func (c *picApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = picprovider.Instance.Delete(id, authutils.GetUserID(ctx), authutils.IsAdmin(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список заявок
// @Tags Заявка PIC
// @Description Список заявок с фильтром
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 picapimodels.PicFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]picapimodels.PicView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/list [post]
func (c *picApiController) list(ctx *fiber.Ctx) error {
	var payload picapimodels.PicFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := picprovider.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Мои заявки
// @Tags Заявка PIC
// @Description Список заявок текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 picapimodels.PicFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]picapimodels.PicView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/my [post]
func (c *picApiController) my(ctx *fiber.Ctx) error {
	var payload picapimodels.PicFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.CreatedBy = authutils.GetUserID(ctx)
	list, rowCount, err := picprovider.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузка реестра
// @Tags Заявка PIC
// @Description Выгрузка реестра заявок в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 picapimodels.PicFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/export/xls [post]
func (c *picApiController) exportXls(ctx *fiber.Ctx) error {
	var payload picapimodels.PicFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := picprovider.Instance.ListAll(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	data, err := xlsexport.ExportRegister(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="pic_register.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Карточка заявки
// @Tags Заявка PIC
// @Description Карточка заявки в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/{id}/export/pdf [get]
func (c *picApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := picprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	data, err := pdfexport.GenerateCard(item)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования карточки")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pic_%s.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(data)
}
