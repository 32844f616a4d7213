package picstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pic-tools-backend/models"
	dbmodels "pic-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Pic) (id string, err error)
	GetByID(id string) (rec *dbmodels.Pic, err error)
	GetByIDForUpdate(id string) (rec *dbmodels.Pic, err error)
	Update(id string, updMap map[string]interface{}) error
	ReplaceChildren(rec dbmodels.Pic) error
	Delete(id string) error
	List(filter ListFilter) (list []dbmodels.Pic, rowCount int64, err error)
	ListPendingForApprover(approverID string) (list []dbmodels.Pic, err error)
}

type ListFilter struct {
	Status    models.PicStatus
	CreatedBy string
	Limit     int
	Offset    int
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Pic) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Pic, error) {
	rec := dbmodels.Pic{}
	err := i.db.
		Preload(clause.Associations).
		Preload("AffectedArea.MandatoryApprovers").
		Preload("ApprovalEntries", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("ApprovalEntries.Approver").
		Preload("ProcedureSteps", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("step_order ASC")
		}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetByIDForUpdate блокирует строку заявки до конца транзакции
func (i impl) GetByIDForUpdate(id string) (*dbmodels.Pic, error) {
	rec := dbmodels.Pic{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Pic{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

// ReplaceChildren заменяет вложенные части заявки целиком, кроме журнала согласования
func (i impl) ReplaceChildren(rec dbmodels.Pic) error {
	childTypes := []interface{}{
		&dbmodels.PicProcedureStep{},
		&dbmodels.PicDocument{},
		&dbmodels.PicValidation{},
		&dbmodels.PicAvailability{},
		&dbmodels.PicChangeReason{},
	}
	for _, child := range childTypes {
		err := i.db.
			Where("pic_id = ?", rec.ID).
			Delete(child).
			Error
		if err != nil {
			return err
		}
	}
	for idx := range rec.ProcedureSteps {
		rec.ProcedureSteps[idx].PicID = rec.ID
	}
	if len(rec.ProcedureSteps) > 0 {
		if err := i.db.Create(&rec.ProcedureSteps).Error; err != nil {
			return err
		}
	}
	for idx := range rec.Documents {
		rec.Documents[idx].PicID = rec.ID
	}
	if len(rec.Documents) > 0 {
		if err := i.db.Create(&rec.Documents).Error; err != nil {
			return err
		}
	}
	for idx := range rec.Validations {
		rec.Validations[idx].PicID = rec.ID
	}
	if len(rec.Validations) > 0 {
		if err := i.db.Create(&rec.Validations).Error; err != nil {
			return err
		}
	}
	if rec.Availability != nil {
		rec.Availability.PicID = rec.ID
		if err := i.db.Create(rec.Availability).Error; err != nil {
			return err
		}
	}
	if rec.ChangeReason != nil {
		rec.ChangeReason.PicID = rec.ID
		if err := i.db.Create(rec.ChangeReason).Error; err != nil {
			return err
		}
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Pic{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(filter ListFilter) (list []dbmodels.Pic, rowCount int64, err error) {
	list = []dbmodels.Pic{}
	tx := i.db.Model(&dbmodels.Pic{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.CreatedBy != "" {
		tx = tx.Where("created_by = ?", filter.CreatedBy)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Preload("AffectedArea").
		Preload("Creator").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

// ListPendingForApprover заявки на согласовании, ждущие решения аппрувера
func (i impl) ListPendingForApprover(approverID string) (list []dbmodels.Pic, err error) {
	list = []dbmodels.Pic{}
	err = i.db.
		Joins("JOIN approval_entries ON approval_entries.pic_id = pics.id").
		Where("approval_entries.approver_id = ?", approverID).
		Where("approval_entries.decision = ?", models.DecisionPending).
		Where("pics.status = ?", models.PicStatusPending).
		Preload("AffectedArea").
		Preload("Creator").
		Order("pics.created_at DESC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
