package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"pic-tools-backend/controllers"
	approverset "pic-tools-backend/lib/approver-set"
	apimodels "pic-tools-backend/models/api"
	areaapimodels "pic-tools-backend/models/api/area"
)

type approverSetApiController struct {
	controllers.BaseAPIController
}

func InitApproverSetApiRouters(app fiber.Router) {
	controller := approverSetApiController{}
	app.Route("pic/approver_set", func(router fiber.Router) {
		router.Post("reconcile", controller.reconcile)
		router.Post("can_remove", controller.canRemove)
	})
}

// @Summary Пересборка набора аппруверов
// @Tags Согласование PIC
// @Description Пересборка набора аппруверов формы при смене области
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 areaapimodels.ReconcileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/approver_set/reconcile [post]
func (c *approverSetApiController) reconcile(ctx *fiber.Ctx) error {
	var payload areaapimodels.ReconcileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := approverset.Instance.ReconcileForArea(payload.Approvers, payload.OldAreaID, payload.NewAreaID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка пересборки набора аппруверов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Проверка удаления аппрувера
// @Tags Согласование PIC
// @Description Проверка, можно ли убрать аппрувера из набора при выбранной области
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 areaapimodels.RemoveCheckData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pic/approver_set/can_remove [post]
func (c *approverSetApiController) canRemove(ctx *fiber.Ctx) error {
	var payload areaapimodels.RemoveCheckData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := approverset.Instance.CheckRemovable(payload.ApproverID, payload.AreaID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки аппрувера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
