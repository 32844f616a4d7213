package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"pic-tools-backend/controllers"
	approvalprovider "pic-tools-backend/lib/approval"
	picprovider "pic-tools-backend/lib/pic"
	authutils "pic-tools-backend/lib/utils/auth-utils"
	apimodels "pic-tools-backend/models/api"
	picapimodels "pic-tools-backend/models/api/pic"
)

type picApprovalsApiController struct {
	controllers.BaseAPIController
}

func InitPicApprovalsApiRouters(app fiber.Router) {
	controller := picApprovalsApiController{}
	app.Route("pic", func(router fiber.Router) {
		router.Get("pending_approvals", controller.pending)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("approvals", controller.approvals)
			idRoute.Put("approve", controller.approve)
		})
	})
}

// @Summary Журнал согласования
// @Tags Согласование PIC
// @Description Журнал решений аппруверов по заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]picapimodels.ApprovalEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/{id}/approvals [get]
func (c *picApprovalsApiController) approvals(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := approvalprovider.Instance.ListFor(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Решение аппрувера
// @Tags Согласование PIC
// @Description Фиксация решения аппрувера по заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 picapimodels.DecisionData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/{id}/approve [put]
func (c *picApprovalsApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload picapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	status, err := picprovider.Instance.RecordDecision(id, authutils.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации решения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(status))
}

// @Summary Ждут моего решения
// @Tags Согласование PIC
// @Description Заявки, ожидающие решения текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]picapimodels.PicView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/pending_approvals [get]
func (c *picApprovalsApiController) pending(ctx *fiber.Ctx) error {
	list, err := picprovider.Instance.PendingApprovals(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявок на согласовании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
