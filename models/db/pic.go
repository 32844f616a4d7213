package dbmodels

import (
	"time"

	"pic-tools-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Pic заявка на изменение процесса (Process Improvement Change).
// Статус всегда выводится из записей ApprovalEntry (lib/approval.ComputeStatus),
// напрямую он выставляется только при сбросе на pending при правке.
type Pic struct {
	BaseModel
	AffectedAreaID     *string `gorm:"type:varchar(36);index"`
	AffectedArea       *AffectedArea
	Platform           string                  `gorm:"type:varchar(255)"`
	PartNumbersScope   models.PartNumbersScope `gorm:"type:varchar(50)"`
	PartNumbersText    string
	ChangeDuration     models.ChangeDuration `gorm:"type:varchar(50)"`
	TemporaryType      string                `gorm:"type:varchar(255)"`
	PiecesTimeDate     string                `gorm:"type:varchar(255)"`
	OriginationDate    time.Time
	ImplementationDate time.Time
	AffectedOperations string
	RevisionReason     string
	Status             models.PicStatus `gorm:"type:varchar(50);index"`
	CreatedBy          string           `gorm:"type:varchar(36);index"`
	Creator            *Employee        `gorm:"foreignKey:CreatedBy"`
	AttachmentID       *string          `gorm:"type:varchar(36)"`

	ProcedureSteps  []PicProcedureStep `gorm:"foreignKey:PicID"`
	Documents       []PicDocument      `gorm:"foreignKey:PicID"`
	Validations     []PicValidation    `gorm:"foreignKey:PicID"`
	ApprovalEntries []ApprovalEntry    `gorm:"foreignKey:PicID"`
	Availability    *PicAvailability   `gorm:"foreignKey:PicID"`
	ChangeReason    *PicChangeReason   `gorm:"foreignKey:PicID"`
}

type PicProcedureStep struct {
	BaseModel
	PicID       string `gorm:"type:varchar(36);index"`
	StepOrder   int
	Description string
	Responsible string `gorm:"type:varchar(255)"`
	Date        time.Time
}

type PicDocument struct {
	BaseModel
	PicID        string `gorm:"type:varchar(36);index"`
	DocumentType string `gorm:"type:varchar(255)"`
	Responsible  string `gorm:"type:varchar(255)"`
	Date         time.Time
}

type PicValidation struct {
	BaseModel
	PicID       string `gorm:"type:varchar(36);index"`
	Description string
	Responsible string `gorm:"type:varchar(255)"`
	Date        time.Time
}

type PicAvailability struct {
	BaseModel
	PicID         string `gorm:"type:varchar(36);uniqueIndex"`
	Fixtures      bool
	TestEquipment bool
	Other         string
}

type PicChangeReason struct {
	BaseModel
	PicID        string `gorm:"type:varchar(36);uniqueIndex"`
	Safety       bool
	Delivery     bool
	Productivity bool
	Quality      bool
	Cost         bool
	Process      bool
	Other        string
}

func (p *Pic) AfterDelete(tx *gorm.DB) (err error) {
	if p.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("pic_id = ?", p.ID).Delete(&PicProcedureStep{})
	tx.Clauses(clause.Returning{}).Where("pic_id = ?", p.ID).Delete(&PicDocument{})
	tx.Clauses(clause.Returning{}).Where("pic_id = ?", p.ID).Delete(&PicValidation{})
	tx.Clauses(clause.Returning{}).Where("pic_id = ?", p.ID).Delete(&ApprovalEntry{})
	tx.Clauses(clause.Returning{}).Where("pic_id = ?", p.ID).Delete(&PicAvailability{})
	tx.Clauses(clause.Returning{}).Where("pic_id = ?", p.ID).Delete(&PicChangeReason{})
	tx.Clauses(clause.Returning{}).Where("pic_id = ?", p.ID).Delete(&FileStorage{})
	return
}
