package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "pic-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AffectedArea) (id string, err error)
	GetByID(id string) (rec *dbmodels.AffectedArea, err error)
	List() (list []dbmodels.AffectedArea, err error)
	Update(id string, updMap map[string]interface{}) error
	ReplaceApprovers(areaID string, approvers []dbmodels.MandatoryApprover) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AffectedArea) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.isUnique("", rec.Name)
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.AffectedArea, error) {
	rec := dbmodels.AffectedArea{}
	err := i.db.
		Preload("MandatoryApprovers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
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

func (i impl) List() (list []dbmodels.AffectedArea, err error) {
	list = []dbmodels.AffectedArea{}
	err = i.db.
		Preload("MandatoryApprovers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Order("name ASC").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	name, ok := updMap["name"]
	if ok {
		err := i.isUnique(id, name.(string))
		if err != nil {
			return err
		}
	}
	err := i.db.
		Model(&dbmodels.AffectedArea{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ReplaceApprovers полная замена списка обязательных аппруверов области
func (i impl) ReplaceApprovers(areaID string, approvers []dbmodels.MandatoryApprover) error {
	err := i.db.
		Where("area_id = ?", areaID).
		Delete(&dbmodels.MandatoryApprover{}).
		Error
	if err != nil {
		return err
	}
	if len(approvers) == 0 {
		return nil
	}
	for idx := range approvers {
		approvers[idx].AreaID = areaID
		approvers[idx].Position = idx
	}
	err = i.db.
		Create(&approvers).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.AffectedArea{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	err := i.db.
		Clauses(clause.Returning{}).
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) isUnique(selfID, name string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.AffectedArea{})
	tx.Where("name = ?", name)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "ошибка проверки уникальности области")
	}
	if rowCount != 0 {
		return errors.New("область уже существует")
	}
	return nil
}
