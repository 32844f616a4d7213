package approvalprovider

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pic-tools-backend/models"
	dbmodels "pic-tools-backend/models/db"
)

func entries(decisions ...models.ApprovalDecision) []dbmodels.ApprovalEntry {
	result := make([]dbmodels.ApprovalEntry, 0, len(decisions))
	for _, d := range decisions {
		result = append(result, dbmodels.ApprovalEntry{Decision: d})
	}
	return result
}

func TestComputeStatus(t *testing.T) {
	t.Run(`пустой журнал остается на согласовании`, func(t *testing.T) {
		require.Equal(t, models.PicStatusPending, ComputeStatus(nil))
		require.Equal(t, models.PicStatusPending, ComputeStatus([]dbmodels.ApprovalEntry{}))
	})
	t.Run(`одно ожидающее решение держит заявку на согласовании`, func(t *testing.T) {
		status := ComputeStatus(entries(models.DecisionApproved, models.DecisionPending))
		require.Equal(t, models.PicStatusPending, status)
	})
	t.Run(`все согласовали`, func(t *testing.T) {
		status := ComputeStatus(entries(models.DecisionApproved, models.DecisionApproved, models.DecisionApproved))
		require.Equal(t, models.PicStatusApproved, status)
	})
	t.Run(`одно отклонение отклоняет заявку`, func(t *testing.T) {
		status := ComputeStatus(entries(models.DecisionApproved, models.DecisionRejected, models.DecisionPending))
		require.Equal(t, models.PicStatusRejected, status)
	})
	t.Run(`отклонение перевешивает даже при всех остальных согласованиях`, func(t *testing.T) {
		status := ComputeStatus(entries(models.DecisionApproved, models.DecisionApproved, models.DecisionRejected))
		require.Equal(t, models.PicStatusRejected, status)
	})
	t.Run(`единственный аппрувер решает судьбу заявки`, func(t *testing.T) {
		require.Equal(t, models.PicStatusApproved, ComputeStatus(entries(models.DecisionApproved)))
		require.Equal(t, models.PicStatusRejected, ComputeStatus(entries(models.DecisionRejected)))
	})
}

// статус не зависит от порядка, в котором аппруверы приняли решения
func TestComputeStatusOrderIndependent(t *testing.T) {
	decisions := []models.ApprovalDecision{
		models.DecisionApproved,
		models.DecisionRejected,
		models.DecisionPending,
		models.DecisionApproved,
	}
	expected := ComputeStatus(entries(decisions...))
	for shift := 1; shift < len(decisions); shift++ {
		rotated := make([]models.ApprovalDecision, 0, len(decisions))
		rotated = append(rotated, decisions[shift:]...)
		rotated = append(rotated, decisions[:shift]...)
		require.Equal(t, expected, ComputeStatus(entries(rotated...)))
	}
}
