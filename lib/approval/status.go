package approvalprovider

import (
	"pic-tools-backend/models"
	dbmodels "pic-tools-backend/models/db"
)

// ComputeStatus выводит статус заявки из журнала решений.
// Хотя бы одно отклонение дает rejected независимо от остальных решений.
// Согласован только непустой журнал, в котором решили все.
// Пустой журнал всегда pending, автосогласования без аппруверов нет.
func ComputeStatus(entries []dbmodels.ApprovalEntry) models.PicStatus {
	if len(entries) == 0 {
		return models.PicStatusPending
	}
	allApproved := true
	for _, entry := range entries {
		switch entry.Decision {
		case models.DecisionRejected:
			return models.PicStatusRejected
		case models.DecisionApproved:
		default:
			allApproved = false
		}
	}
	if allApproved {
		return models.PicStatusApproved
	}
	return models.PicStatusPending
}
