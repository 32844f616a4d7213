package areaprovider

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"pic-tools-backend/db"
	"pic-tools-backend/errs"
	"pic-tools-backend/lib/area/store"
	initchecker "pic-tools-backend/lib/utils/init-checker"
	areaapimodels "pic-tools-backend/models/api/area"
	dbmodels "pic-tools-backend/models/db"
)

type Provider interface {
	Create(request areaapimodels.AreaData) (id string, err error)
	Update(id string, request areaapimodels.AreaData) error
	Get(id string) (item areaapimodels.AreaView, err error)
	List() (list []areaapimodels.AreaView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request areaapimodels.AreaData) (id string, err error) {
	if err = request.Validate(); err != nil {
		return "", errs.NewValidation(err.Error())
	}
	rec := dbmodels.AffectedArea{
		Name:               request.Name,
		MandatoryApprovers: toDbApprovers(request.MandatoryApprovers),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errs.WrapStorage(err, "ошибка создания области")
	}
	log.
		WithField("area_name", rec.Name).
		WithField("rec_id", id).
		Info("создана область")
	return id, nil
}

// Update имя и список обязательных аппруверов меняются атомарно
func (i impl) Update(id string, request areaapimodels.AreaData) error {
	logger := log.WithField("rec_id", id)
	if err := request.Validate(); err != nil {
		return errs.NewValidation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errs.WrapStorage(err, "ошибка получения области")
	}
	if rec == nil {
		return errs.NewNotFound("область не найдена")
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := store.NewInstance(tx)
		updMap := map[string]interface{}{
			"name": request.Name,
		}
		if err := txStore.Update(id, updMap); err != nil {
			return err
		}
		return txStore.ReplaceApprovers(id, toDbApprovers(request.MandatoryApprovers))
	})
	if err != nil {
		return errs.WrapStorage(err, "ошибка обновления области")
	}
	logger.Info("обновлена область")
	return nil
}

func (i impl) Get(id string) (item areaapimodels.AreaView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return areaapimodels.AreaView{}, errs.WrapStorage(err, "ошибка получения области")
	}
	if rec == nil {
		return areaapimodels.AreaView{}, errs.NewNotFound("область не найдена")
	}
	return areaapimodels.AreaConvert(*rec), nil
}

func (i impl) List() (list []areaapimodels.AreaView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errs.WrapStorage(err, "ошибка получения списка областей")
	}
	list = make([]areaapimodels.AreaView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, areaapimodels.AreaConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errs.WrapStorage(err, "ошибка получения области")
	}
	if rec == nil {
		return errs.NewNotFound("область не найдена")
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// заявки остаются, теряя только ссылку на область
		err := tx.
			Model(&dbmodels.Pic{}).
			Where("affected_area_id = ?", id).
			Update("affected_area_id", nil).
			Error
		if err != nil {
			return err
		}
		return store.NewInstance(tx).Delete(id)
	})
	if err != nil {
		return errs.WrapStorage(err, "ошибка удаления области")
	}
	logger.Info("удалена область")
	return nil
}

func toDbApprovers(refs []areaapimodels.ApproverRef) []dbmodels.MandatoryApprover {
	result := make([]dbmodels.MandatoryApprover, 0, len(refs))
	for idx, ref := range refs {
		result = append(result, dbmodels.MandatoryApprover{
			Position:    idx,
			ApproverID:  ref.ApproverID,
			DisplayName: ref.DisplayName,
		})
	}
	return result
}
