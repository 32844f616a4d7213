package dbmodels

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AffectedArea struct {
	BaseModel
	Name               string              `gorm:"type:varchar(255)"`
	MandatoryApprovers []MandatoryApprover `gorm:"foreignKey:AreaID"`
}

// MandatoryApprover снимок обязательного аппрувера области:
// хранит ид и отображаемое имя на момент настройки, не ссылку на запись сотрудника
type MandatoryApprover struct {
	BaseModel
	AreaID      string `gorm:"type:varchar(36);index"`
	Position    int
	ApproverID  string `gorm:"type:varchar(36)"`
	DisplayName string `gorm:"type:varchar(255)"`
}

func (a *AffectedArea) Validate() error {
	if a.Name == "" {
		return errors.New("не указано название области")
	}
	return nil
}

func (a *AffectedArea) AfterDelete(tx *gorm.DB) (err error) {
	if a.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("area_id = ?", a.ID).Delete(&MandatoryApprover{})
	return
}
