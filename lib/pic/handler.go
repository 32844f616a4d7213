package picprovider

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"pic-tools-backend/db"
	"pic-tools-backend/errs"
	approvalprovider "pic-tools-backend/lib/approval"
	approverset "pic-tools-backend/lib/approver-set"
	employeestore "pic-tools-backend/lib/employee/store"
	notificationprovider "pic-tools-backend/lib/notification"
	picstore "pic-tools-backend/lib/pic/store"
	"pic-tools-backend/lib/utils/helpers"
	initchecker "pic-tools-backend/lib/utils/init-checker"
	"pic-tools-backend/models"
	picapimodels "pic-tools-backend/models/api/pic"
	dbmodels "pic-tools-backend/models/db"
)

type Provider interface {
	Create(authorID string, data picapimodels.PicCreateData) (id string, err error)
	Get(id string) (item picapimodels.PicView, err error)
	Update(id, userID string, isAdmin bool, data picapimodels.PicEditData) error
	Delete(id, userID string, isAdmin bool) error
	List(filter picapimodels.PicFilter) (list []picapimodels.PicView, rowCount int64, err error)
	ListAll(filter picapimodels.PicFilter) (list []picapimodels.PicView, err error)
	PendingApprovals(approverID string) (list []picapimodels.PicView, err error)
	RecordDecision(picID, approverID string, data picapimodels.DecisionData) (status models.PicStatus, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         picstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		approverSet:   approverset.Instance,
		notifier:      notificationprovider.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"approverSet", instance.approverSet,
		"notifier", instance.notifier,
	)
	Instance = instance
}

type impl struct {
	store         picstore.Provider
	employeeStore employeestore.Provider
	approverSet   approverset.Provider
	notifier      notificationprovider.Provider
}

func (i impl) Create(authorID string, data picapimodels.PicCreateData) (id string, err error) {
	logger := log.WithField("author_id", authorID)
	if err = data.Validate(); err != nil {
		return "", err
	}
	approverIDs, err := i.checkApprovers(data.PicData)
	if err != nil {
		return "", err
	}
	rec := buildDbPic(data.PicData)
	rec.Status = models.PicStatusPending
	rec.CreatedBy = authorID
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		id, err = picstore.NewInstance(tx).Create(rec)
		if err != nil {
			return errs.WrapStorage(err, "ошибка создания заявки")
		}
		return approvalprovider.NewHandlerWithTx(tx).Seed(id, approverIDs)
	})
	if err != nil {
		return "", err
	}
	rec.ID = id
	i.notifier.PicCreated(rec)
	i.notifier.ApprovalRequested(rec, approverIDs)
	logger.
		WithField("rec_id", id).
		Info("создана заявка на изменение процесса")
	return id, nil
}

func (i impl) Get(id string) (item picapimodels.PicView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return picapimodels.PicView{}, errs.WrapStorage(err, "ошибка получения заявки")
	}
	if rec == nil {
		return picapimodels.PicView{}, errs.NewNotFound("заявка не найдена")
	}
	return picapimodels.PicConvert(*rec), nil
}

// Update разрушающая замена: вложенные части и журнал согласования
// пересоздаются, статус возвращается на pending
func (i impl) Update(id, userID string, isAdmin bool, data picapimodels.PicEditData) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errs.WrapStorage(err, "ошибка получения заявки")
	}
	if rec == nil {
		return errs.NewNotFound("заявка не найдена")
	}
	if err = CheckModifyAllowed(*rec, userID, isAdmin); err != nil {
		return err
	}
	if err = data.Validate(); err != nil {
		return err
	}
	approverIDs, err := i.checkApprovers(data.PicData)
	if err != nil {
		return err
	}
	newRec := buildDbPic(data.PicData)
	newRec.ID = id
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := picstore.NewInstance(tx)
		locked, err := txStore.GetByIDForUpdate(id)
		if err != nil {
			return errs.WrapStorage(err, "ошибка блокировки заявки")
		}
		if locked == nil {
			return errs.NewNotFound("заявка не найдена")
		}
		if err = CheckModifyAllowed(*locked, userID, isAdmin); err != nil {
			return err
		}
		updMap := buildUpdMap(data.PicData)
		updMap["status"] = models.PicStatusPending
		if err = txStore.Update(id, updMap); err != nil {
			return errs.WrapStorage(err, "ошибка обновления заявки")
		}
		if err = txStore.ReplaceChildren(newRec); err != nil {
			return errs.WrapStorage(err, "ошибка замены вложенных частей заявки")
		}
		return approvalprovider.NewHandlerWithTx(tx).Reset(id, approverIDs)
	})
	if err != nil {
		return err
	}
	newRec.Status = models.PicStatusPending
	newRec.CreatedBy = rec.CreatedBy
	i.notifier.ApprovalRequested(newRec, approverIDs)
	logger.Info("заявка обновлена и отправлена на повторное согласование")
	return nil
}

func (i impl) Delete(id, userID string, isAdmin bool) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errs.WrapStorage(err, "ошибка получения заявки")
	}
	if rec == nil {
		return errs.NewNotFound("заявка не найдена")
	}
	if err = CheckModifyAllowed(*rec, userID, isAdmin); err != nil {
		return err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := picstore.NewInstance(tx)
		locked, err := txStore.GetByIDForUpdate(id)
		if err != nil {
			return errs.WrapStorage(err, "ошибка блокировки заявки")
		}
		if locked == nil {
			return errs.NewNotFound("заявка не найдена")
		}
		if err = CheckModifyAllowed(*locked, userID, isAdmin); err != nil {
			return err
		}
		if err = txStore.Delete(id); err != nil {
			return errs.WrapStorage(err, "ошибка удаления заявки")
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("заявка удалена")
	return nil
}

func (i impl) List(filter picapimodels.PicFilter) (list []picapimodels.PicView, rowCount int64, err error) {
	if err = filter.Validate(); err != nil {
		return nil, 0, err
	}
	offset, limit := filter.GetOffset()
	recList, rowCount, err := i.store.List(picstore.ListFilter{
		Status:    filter.Status,
		CreatedBy: filter.CreatedBy,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, 0, errs.WrapStorage(err, "ошибка получения списка заявок")
	}
	return convertPicList(recList), rowCount, nil
}

// ListAll постранично вычитывает весь реестр под фильтр, для выгрузок
func (i impl) ListAll(filter picapimodels.PicFilter) (list []picapimodels.PicView, err error) {
	if err = filter.Validate(); err != nil {
		return nil, err
	}
	const pageSize = 100
	for offset := 0; ; offset += pageSize {
		recList, _, err := i.store.List(picstore.ListFilter{
			Status:    filter.Status,
			CreatedBy: filter.CreatedBy,
			Limit:     pageSize,
			Offset:    offset,
		})
		if err != nil {
			return nil, errs.WrapStorage(err, "ошибка получения списка заявок")
		}
		list = append(list, convertPicList(recList)...)
		if len(recList) < pageSize {
			return list, nil
		}
	}
}

func (i impl) PendingApprovals(approverID string) (list []picapimodels.PicView, err error) {
	recList, err := i.store.ListPendingForApprover(approverID)
	if err != nil {
		return nil, errs.WrapStorage(err, "ошибка получения заявок на согласовании")
	}
	return convertPicList(recList), nil
}

func convertPicList(recList []dbmodels.Pic) []picapimodels.PicView {
	list := make([]picapimodels.PicView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, picapimodels.PicConvert(rec))
	}
	return list
}

// RecordDecision решение и пересчет статуса выполняются в одной транзакции
// под блокировкой строки заявки, параллельные решения сериализуются
func (i impl) RecordDecision(picID, approverID string, data picapimodels.DecisionData) (status models.PicStatus, err error) {
	logger := log.
		WithField("pic_id", picID).
		WithField("approver_id", approverID)
	var notifyRec dbmodels.Pic
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := picstore.NewInstance(tx)
		locked, err := txStore.GetByIDForUpdate(picID)
		if err != nil {
			return errs.WrapStorage(err, "ошибка блокировки заявки")
		}
		if locked == nil {
			return errs.NewNotFound("заявка не найдена")
		}
		approval := approvalprovider.NewHandlerWithTx(tx)
		if err = approval.RecordDecision(picID, approverID, data); err != nil {
			return err
		}
		status, err = approval.ComputeFor(picID)
		if err != nil {
			return err
		}
		if status != locked.Status {
			updMap := map[string]interface{}{
				"status": status,
			}
			if err = txStore.Update(picID, updMap); err != nil {
				return errs.WrapStorage(err, "ошибка обновления статуса заявки")
			}
		}
		notifyRec = *locked
		notifyRec.Status = status
		return nil
	})
	if err != nil {
		return "", err
	}
	i.notifier.DecisionRecorded(notifyRec, approverID, data.Decision, data.Comment)
	logger.
		WithField("decision", data.Decision).
		WithField("status", status).
		Info("решение по заявке учтено")
	return status, nil
}

// checkApprovers валидирует итоговый набор аппруверов против
// обязательных по области и справочника сотрудников
func (i impl) checkApprovers(data picapimodels.PicData) ([]string, error) {
	approverIDs := make([]string, 0, len(data.Approvers))
	for _, a := range data.Approvers {
		approverIDs = append(approverIDs, a.ApproverID)
	}
	mandatory, err := i.approverSet.ResolveMandatory(data.AffectedAreaID)
	if err != nil {
		return nil, err
	}
	if err = approverset.EnsureValid(approverIDs, mandatory); err != nil {
		return nil, err
	}
	found, err := i.employeeStore.GetByIDs(approverIDs)
	if err != nil {
		return nil, errs.WrapStorage(err, "ошибка проверки аппруверов")
	}
	if len(found) != len(approverIDs) {
		return nil, errs.NewValidation("аппрувер не найден в справочнике сотрудников")
	}
	return approverIDs, nil
}

func buildDbPic(data picapimodels.PicData) dbmodels.Pic {
	rec := dbmodels.Pic{
		Platform:           data.Platform,
		PartNumbersScope:   data.PartNumbersScope,
		PartNumbersText:    data.PartNumbersText,
		ChangeDuration:     data.ChangeDuration,
		TemporaryType:      data.TemporaryType,
		PiecesTimeDate:     data.PiecesTimeDate,
		AffectedOperations: data.AffectedOperations,
		RevisionReason:     data.RevisionReason,
	}
	if data.AffectedAreaID != "" {
		areaID := data.AffectedAreaID
		rec.AffectedAreaID = &areaID
	}
	rec.OriginationDate, _ = helpers.ParseDate(data.OriginationDate)
	rec.ImplementationDate, _ = helpers.ParseDate(data.ImplementationDate)
	for idx, step := range data.ProcedureSteps {
		date, _ := helpers.ParseDate(step.Date)
		rec.ProcedureSteps = append(rec.ProcedureSteps, dbmodels.PicProcedureStep{
			StepOrder:   idx,
			Description: step.Step,
			Responsible: step.Responsible,
			Date:        date,
		})
	}
	for _, doc := range data.Documents {
		date, _ := helpers.ParseDate(doc.Date)
		rec.Documents = append(rec.Documents, dbmodels.PicDocument{
			DocumentType: doc.DocumentType,
			Responsible:  doc.Responsible,
			Date:         date,
		})
	}
	for _, val := range data.Validations {
		date, _ := helpers.ParseDate(val.Date)
		rec.Validations = append(rec.Validations, dbmodels.PicValidation{
			Description: val.Description,
			Responsible: val.Responsible,
			Date:        date,
		})
	}
	rec.Availability = &dbmodels.PicAvailability{
		Fixtures:      data.Availability.Fixtures,
		TestEquipment: data.Availability.TestEquipment,
		Other:         data.Availability.Other,
	}
	rec.ChangeReason = &dbmodels.PicChangeReason{
		Safety:       data.ChangeReason.Safety,
		Delivery:     data.ChangeReason.Delivery,
		Productivity: data.ChangeReason.Productivity,
		Quality:      data.ChangeReason.Quality,
		Cost:         data.ChangeReason.Cost,
		Process:      data.ChangeReason.Process,
		Other:        data.ChangeReason.Other,
	}
	return rec
}

func buildUpdMap(data picapimodels.PicData) map[string]interface{} {
	var areaID *string
	if data.AffectedAreaID != "" {
		value := data.AffectedAreaID
		areaID = &value
	}
	originationDate, _ := helpers.ParseDate(data.OriginationDate)
	implementationDate, _ := helpers.ParseDate(data.ImplementationDate)
	return map[string]interface{}{
		"affected_area_id":    areaID,
		"platform":            data.Platform,
		"part_numbers_scope":  data.PartNumbersScope,
		"part_numbers_text":   data.PartNumbersText,
		"change_duration":     data.ChangeDuration,
		"temporary_type":      data.TemporaryType,
		"pieces_time_date":    data.PiecesTimeDate,
		"origination_date":    originationDate,
		"implementation_date": implementationDate,
		"affected_operations": data.AffectedOperations,
		"revision_reason":     data.RevisionReason,
	}
}
