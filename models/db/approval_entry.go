package dbmodels

import (
	"time"

	"pic-tools-backend/models"
)

// ApprovalEntry решение одного аппрувера по одной заявке.
// Не больше одной записи на пару (pic_id, approver_id); записи создаются
// только пакетно при Seed и целиком пересоздаются при правке заявки.
// Position хранит порядок внутри пакета: created_at у всего пакета
// совпадает и порядком служить не может.
type ApprovalEntry struct {
	BaseModel
	PicID      string    `gorm:"type:varchar(36);index:idx_pic_approver,unique"`
	ApproverID string    `gorm:"type:varchar(36);index:idx_pic_approver,unique"`
	Approver   *Employee `gorm:"foreignKey:ApproverID"`
	Position   int
	Decision   models.ApprovalDecision
	Comment    string
	DecidedAt  *time.Time
}
