package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"pic-tools-backend/controllers"
	filestorage "pic-tools-backend/lib/file-storage"
	apimodels "pic-tools-backend/models/api"
	filesapimodels "pic-tools-backend/models/api/files"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app fiber.Router) {
	controller := fileApiController{}
	app.Route("pic/:id/attachment", func(router fiber.Router) {
		router.Post("", controller.upload)
	})
	app.Route("file/:id", func(router fiber.Router) {
		router.Get("", controller.download)
	})
}

// @Summary Загрузка вложения
// @Tags Файлы
// @Description Загрузка вложения к заявке, только PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"pic ID"
// @Param	file				formData	file	true	"файл"
// @Success 200 {object} apimodels.Response{data=filesapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/{id}/attachment [post]
func (c *fileApiController) upload(ctx *fiber.Ctx) error {
	picID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	id, err := filestorage.Instance.UploadAttachment(ctx.UserContext(), picID, fileHeader.Filename, contentType, data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки вложения")
	}
	view := filesapimodels.FileView{
		ID:          id,
		Name:        fileHeader.Filename,
		PicID:       picID,
		ContentType: "application/pdf",
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Скачивание файла
// @Tags Файлы
// @Description Скачивание вложения по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"file ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/file/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, data, err := filestorage.Instance.GetAttachment(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания файла")
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rec.Name))
	return ctx.Status(fiber.StatusOK).Send(data)
}
