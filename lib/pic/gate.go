package picprovider

import (
	"pic-tools-backend/errs"
	dbmodels "pic-tools-backend/models/db"
)

// CheckModifyAllowed пускает к правке и удалению только отклоненные заявки.
// Согласованные неизменяемы, заявки на согласовании надо сначала отклонить.
func CheckModifyAllowed(rec dbmodels.Pic, userID string, isAdmin bool) error {
	if !rec.Status.AllowEdit() {
		return errs.NewPermission("правка и удаление доступны только для отклоненных заявок")
	}
	if !isAdmin && rec.CreatedBy != userID {
		return errs.NewPermission("изменять заявку может только ее автор")
	}
	return nil
}
