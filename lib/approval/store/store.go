package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"pic-tools-backend/models"
	dbmodels "pic-tools-backend/models/db"
)

type Provider interface {
	CreateBatch(entries []dbmodels.ApprovalEntry) error
	ListByPic(picID string) (list []dbmodels.ApprovalEntry, err error)
	GetPending(picID, approverID string) (rec *dbmodels.ApprovalEntry, err error)
	Update(id string, updMap map[string]interface{}) error
	DeleteByPic(picID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBatch(entries []dbmodels.ApprovalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	err := i.db.
		Create(&entries).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ListByPic записи журнала в порядке добавления в пакет
func (i impl) ListByPic(picID string) (list []dbmodels.ApprovalEntry, err error) {
	list = []dbmodels.ApprovalEntry{}
	err = i.db.
		Preload("Approver").
		Where("pic_id = ?", picID).
		Order("position ASC").
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

func (i impl) GetPending(picID, approverID string) (*dbmodels.ApprovalEntry, error) {
	rec := dbmodels.ApprovalEntry{}
	err := i.db.
		Where("pic_id = ?", picID).
		Where("approver_id = ?", approverID).
		Where("decision = ?", models.DecisionPending).
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
	err := i.db.
		Model(&dbmodels.ApprovalEntry{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) DeleteByPic(picID string) error {
	err := i.db.
		Where("pic_id = ?", picID).
		Delete(&dbmodels.ApprovalEntry{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
