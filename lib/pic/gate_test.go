package picprovider

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pic-tools-backend/errs"
	"pic-tools-backend/models"
	dbmodels "pic-tools-backend/models/db"
)

func picRec(status models.PicStatus, createdBy string) dbmodels.Pic {
	return dbmodels.Pic{
		BaseModel: dbmodels.BaseModel{ID: "pic1"},
		Status:    status,
		CreatedBy: createdBy,
	}
}

func TestCheckModifyAllowed(t *testing.T) {
	t.Run(`автор правит отклоненную заявку`, func(t *testing.T) {
		err := CheckModifyAllowed(picRec(models.PicStatusRejected, "u1"), "u1", false)
		require.NoError(t, err)
	})
	t.Run(`админ правит чужую отклоненную заявку`, func(t *testing.T) {
		err := CheckModifyAllowed(picRec(models.PicStatusRejected, "u1"), "u2", true)
		require.NoError(t, err)
	})
	t.Run(`заявку на согласовании менять нельзя`, func(t *testing.T) {
		err := CheckModifyAllowed(picRec(models.PicStatusPending, "u1"), "u1", false)
		require.Error(t, err)
		require.True(t, errs.IsPermission(err))
	})
	t.Run(`согласованная заявка неизменяема даже для админа`, func(t *testing.T) {
		err := CheckModifyAllowed(picRec(models.PicStatusApproved, "u1"), "u1", true)
		require.Error(t, err)
		require.True(t, errs.IsPermission(err))
	})
	t.Run(`чужую отклоненную заявку обычный пользователь не правит`, func(t *testing.T) {
		err := CheckModifyAllowed(picRec(models.PicStatusRejected, "u1"), "u2", false)
		require.Error(t, err)
		require.True(t, errs.IsPermission(err))
	})
}
