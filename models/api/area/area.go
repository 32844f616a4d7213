package areaapimodels

import (
	dbmodels "pic-tools-backend/models/db"

	"github.com/pkg/errors"
)

type ApproverRef struct {
	ApproverID  string `json:"approver_id"`
	DisplayName string `json:"display_name"`
}

func (a ApproverRef) Validate() error {
	if a.ApproverID == "" {
		return errors.New("отсутсвует идентификатор аппрувера")
	}
	return nil
}

type AreaData struct {
	Name               string        `json:"name"`
	MandatoryApprovers []ApproverRef `json:"mandatory_approvers"`
}

func (a AreaData) Validate() error {
	if a.Name == "" {
		return errors.New("не указано название области")
	}
	seen := map[string]bool{}
	for _, ref := range a.MandatoryApprovers {
		if err := ref.Validate(); err != nil {
			return err
		}
		if seen[ref.ApproverID] {
			return errors.Errorf("аппрувер %v указан более одного раза", ref.DisplayName)
		}
		seen[ref.ApproverID] = true
	}
	return nil
}

// ReconcileData пересборка набора аппруверов формы при смене области
type ReconcileData struct {
	Approvers []string `json:"approvers"`   // текущий набор
	OldAreaID string   `json:"old_area_id"` // прежняя область (может быть пустой)
	NewAreaID string   `json:"new_area_id"` // новая область (может быть пустой)
}

type RemoveCheckData struct {
	ApproverID string `json:"approver_id"`
	AreaID     string `json:"area_id"`
}

func (r RemoveCheckData) Validate() error {
	if r.ApproverID == "" {
		return errors.New("отсутсвует идентификатор аппрувера")
	}
	return nil
}

type AreaView struct {
	AreaData
	ID string `json:"id"`
}

func AreaConvert(rec dbmodels.AffectedArea) AreaView {
	refs := make([]ApproverRef, 0, len(rec.MandatoryApprovers))
	for _, m := range rec.MandatoryApprovers {
		refs = append(refs, ApproverRef{
			ApproverID:  m.ApproverID,
			DisplayName: m.DisplayName,
		})
	}
	return AreaView{
		AreaData: AreaData{
			Name:               rec.Name,
			MandatoryApprovers: refs,
		},
		ID: rec.ID,
	}
}
