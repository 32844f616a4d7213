package approverset

import (
	"github.com/pkg/errors"
	"pic-tools-backend/db"
	areastore "pic-tools-backend/lib/area/store"
	initchecker "pic-tools-backend/lib/utils/init-checker"
	"pic-tools-backend/errs"
	areaapimodels "pic-tools-backend/models/api/area"
)

// Provider отдает обязательных аппруверов области из настроек
// и пересобирает набор аппруверов формы при смене области
type Provider interface {
	ResolveMandatory(areaID string) (list []areaapimodels.ApproverRef, err error)
	ReconcileForArea(current []string, oldAreaID, newAreaID string) (list []string, err error)
	CheckRemovable(approverID, areaID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		areaStore: areastore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"areaStore", instance.areaStore,
	)
	Instance = instance
}

type impl struct {
	areaStore areastore.Provider
}

func (i impl) ResolveMandatory(areaID string) (list []areaapimodels.ApproverRef, err error) {
	if areaID == "" {
		return []areaapimodels.ApproverRef{}, nil
	}
	rec, err := i.areaStore.GetByID(areaID)
	if err != nil {
		return nil, errs.WrapStorage(err, "ошибка получения области")
	}
	if rec == nil {
		return nil, errs.NewNotFound("область не найдена")
	}
	list = make([]areaapimodels.ApproverRef, 0, len(rec.MandatoryApprovers))
	for _, m := range rec.MandatoryApprovers {
		list = append(list, areaapimodels.ApproverRef{
			ApproverID:  m.ApproverID,
			DisplayName: m.DisplayName,
		})
	}
	return list, nil
}

func (i impl) ReconcileForArea(current []string, oldAreaID, newAreaID string) (list []string, err error) {
	oldMandatory, err := i.ResolveMandatory(oldAreaID)
	if err != nil {
		return nil, err
	}
	newMandatory, err := i.ResolveMandatory(newAreaID)
	if err != nil {
		return nil, err
	}
	return Reconcile(current, oldMandatory, newMandatory), nil
}

func (i impl) CheckRemovable(approverID, areaID string) error {
	mandatory, err := i.ResolveMandatory(areaID)
	if err != nil {
		return err
	}
	return CanRemove(approverID, mandatory)
}

// EnsureValid проверяет итоговый набор аппруверов заявки:
// без дубликатов и со всеми обязательными по области
func EnsureValid(selected []string, mandatory []areaapimodels.ApproverRef) error {
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			return errs.NewDuplicateApprover(errors.Errorf("аппрувер %v указан более одного раза", id).Error())
		}
		seen[id] = true
	}
	for _, m := range mandatory {
		if !seen[m.ApproverID] {
			return errs.NewMandatoryApprover(errors.Errorf("обязательный аппрувер %v отсутствует в списке", m.DisplayName).Error())
		}
	}
	return nil
}

// CanRemove обязательного аппрувера выбранной области убрать нельзя
func CanRemove(approverID string, mandatory []areaapimodels.ApproverRef) error {
	for _, m := range mandatory {
		if m.ApproverID == approverID {
			return errs.NewMandatoryApprover(errors.Errorf("аппрувер %v обязателен для выбранной области", m.DisplayName).Error())
		}
	}
	return nil
}

// Reconcile пересобирает набор при смене области: обязательные прежней
// области уходят, если их не выбирали отдельно, обязательные новой
// добавляются в конец. Порядок оставшихся сохраняется, дубликаты не появляются.
func Reconcile(current []string, oldMandatory, newMandatory []areaapimodels.ApproverRef) []string {
	oldSet := make(map[string]bool, len(oldMandatory))
	for _, m := range oldMandatory {
		oldSet[m.ApproverID] = true
	}
	newSet := make(map[string]bool, len(newMandatory))
	for _, m := range newMandatory {
		newSet[m.ApproverID] = true
	}

	result := make([]string, 0, len(current)+len(newMandatory))
	kept := make(map[string]bool, len(current))
	for _, id := range current {
		if oldSet[id] && !newSet[id] {
			continue
		}
		if kept[id] {
			continue
		}
		kept[id] = true
		result = append(result, id)
	}
	for _, m := range newMandatory {
		if kept[m.ApproverID] {
			continue
		}
		kept[m.ApproverID] = true
		result = append(result, m.ApproverID)
	}
	return result
}
