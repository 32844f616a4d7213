package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "pic-tools-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.AffectedArea{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AffectedArea")
	}
	if err := DB.AutoMigrate(&dbmodels.MandatoryApprover{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MandatoryApprover")
	}
	if err := DB.AutoMigrate(&dbmodels.Pic{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Pic")
	}
	if err := DB.AutoMigrate(&dbmodels.PicProcedureStep{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PicProcedureStep")
	}
	if err := DB.AutoMigrate(&dbmodels.PicDocument{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PicDocument")
	}
	if err := DB.AutoMigrate(&dbmodels.PicValidation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PicValidation")
	}
	if err := DB.AutoMigrate(&dbmodels.PicAvailability{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PicAvailability")
	}
	if err := DB.AutoMigrate(&dbmodels.PicChangeReason{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PicChangeReason")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalEntry{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
