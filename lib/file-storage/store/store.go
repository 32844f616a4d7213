package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "pic-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FileStorage) (id string, err error)
	GetByID(id string) (rec *dbmodels.FileStorage, err error)
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

func (i impl) Create(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
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

func (i impl) DeleteByPic(picID string) error {
	err := i.db.
		Where("pic_id = ?", picID).
		Delete(&dbmodels.FileStorage{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
