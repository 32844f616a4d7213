package picapimodels

import (
	"time"

	"pic-tools-backend/errs"
	"pic-tools-backend/models"
	dbmodels "pic-tools-backend/models/db"
)

type ApproverData struct {
	ApproverID string `json:"approver_id"`
}

func (a ApproverData) Validate() error {
	if a.ApproverID == "" {
		return errs.NewValidation("отсутсвует идентификатор аппрувера")
	}
	return nil
}

type DecisionData struct {
	Decision models.ApprovalDecision `json:"decision"`
	Comment  string                  `json:"comment"`
}

// Validate комментарий обязателен и для согласования, и для отклонения
func (d DecisionData) Validate() error {
	if err := d.Decision.ValidateFinal(); err != nil {
		return errs.NewValidation(err.Error())
	}
	if d.Comment == "" {
		return errs.NewValidation("отсутсвует комментарий к решению")
	}
	return nil
}

type ApprovalEntryView struct {
	ID           string                  `json:"id"`
	ApproverID   string                  `json:"approver_id"`
	ApproverName string                  `json:"approver_name"`
	Decision     models.ApprovalDecision `json:"decision"`
	DecisionName string                  `json:"decision_name"`
	Comment      string                  `json:"comment"`
	DecidedAt    *time.Time              `json:"decided_at"`
}

func ApprovalEntryConvert(rec dbmodels.ApprovalEntry) ApprovalEntryView {
	approverName := ""
	if rec.Approver != nil {
		approverName = rec.Approver.FullName
	}
	return ApprovalEntryView{
		ID:           rec.ID,
		ApproverID:   rec.ApproverID,
		ApproverName: approverName,
		Decision:     rec.Decision,
		DecisionName: rec.Decision.ToHuman(),
		Comment:      rec.Comment,
		DecidedAt:    rec.DecidedAt,
	}
}
