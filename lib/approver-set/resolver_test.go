package approverset

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pic-tools-backend/errs"
	areaapimodels "pic-tools-backend/models/api/area"
	dbmodels "pic-tools-backend/models/db"
)

func refs(ids ...string) []areaapimodels.ApproverRef {
	result := make([]areaapimodels.ApproverRef, 0, len(ids))
	for _, id := range ids {
		result = append(result, areaapimodels.ApproverRef{
			ApproverID:  id,
			DisplayName: "Сотрудник " + id,
		})
	}
	return result
}

func TestEnsureValid(t *testing.T) {
	t.Run(`набор с обязательными аппруверами проходит проверку`, func(t *testing.T) {
		err := EnsureValid([]string{"e1", "e2", "e3"}, refs("e1", "e2"))
		require.NoError(t, err)
	})
	t.Run(`без обязательного аппрувера набор не проходит`, func(t *testing.T) {
		err := EnsureValid([]string{"e2", "e3"}, refs("e1"))
		require.Error(t, err)
		require.True(t, errs.IsMandatoryApprover(err))
	})
	t.Run(`дубликат аппрувера недопустим`, func(t *testing.T) {
		err := EnsureValid([]string{"e1", "e2", "e1"}, refs("e1"))
		require.Error(t, err)
		require.True(t, errs.IsDuplicateApprover(err))
	})
	t.Run(`пустой набор без области допустим на уровне резолвера`, func(t *testing.T) {
		err := EnsureValid(nil, nil)
		require.NoError(t, err)
	})
}

func TestCanRemove(t *testing.T) {
	t.Run(`обязательного аппрувера убрать нельзя`, func(t *testing.T) {
		err := CanRemove("e1", refs("e1", "e2"))
		require.Error(t, err)
		require.True(t, errs.IsMandatoryApprover(err))
	})
	t.Run(`добавленного вручную аппрувера убрать можно`, func(t *testing.T) {
		err := CanRemove("e3", refs("e1", "e2"))
		require.NoError(t, err)
	})
}

type fakeAreaStore struct {
	areas map[string][]dbmodels.MandatoryApprover
}

func (f fakeAreaStore) Create(rec dbmodels.AffectedArea) (string, error) { return rec.ID, nil }
func (f fakeAreaStore) GetByID(id string) (*dbmodels.AffectedArea, error) {
	mandatory, ok := f.areas[id]
	if !ok {
		return nil, nil
	}
	return &dbmodels.AffectedArea{
		BaseModel:          dbmodels.BaseModel{ID: id},
		Name:               "Область " + id,
		MandatoryApprovers: mandatory,
	}, nil
}
func (f fakeAreaStore) List() ([]dbmodels.AffectedArea, error)               { return nil, nil }
func (f fakeAreaStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f fakeAreaStore) ReplaceApprovers(areaID string, approvers []dbmodels.MandatoryApprover) error {
	return nil
}
func (f fakeAreaStore) Delete(id string) error { return nil }

func dbRefs(ids ...string) []dbmodels.MandatoryApprover {
	result := make([]dbmodels.MandatoryApprover, 0, len(ids))
	for idx, id := range ids {
		result = append(result, dbmodels.MandatoryApprover{
			Position:    idx,
			ApproverID:  id,
			DisplayName: "Сотрудник " + id,
		})
	}
	return result
}

func TestResolveMandatory(t *testing.T) {
	h := impl{areaStore: fakeAreaStore{areas: map[string][]dbmodels.MandatoryApprover{
		"area1": dbRefs("e1", "e2"),
	}}}
	t.Run(`обязательные аппруверы в настроенном порядке`, func(t *testing.T) {
		list, err := h.ResolveMandatory("area1")
		require.NoError(t, err)
		require.Equal(t, refs("e1", "e2"), list)
	})
	t.Run(`без области обязательных нет`, func(t *testing.T) {
		list, err := h.ResolveMandatory("")
		require.NoError(t, err)
		require.Empty(t, list)
	})
	t.Run(`несуществующая область`, func(t *testing.T) {
		_, err := h.ResolveMandatory("ghost")
		require.Error(t, err)
		require.True(t, errs.IsNotFound(err))
	})
}

func TestReconcileForArea(t *testing.T) {
	h := impl{areaStore: fakeAreaStore{areas: map[string][]dbmodels.MandatoryApprover{
		"areaA": dbRefs("e1"),
		"areaB": dbRefs("e2"),
	}}}
	list, err := h.ReconcileForArea([]string{"e1", "e3"}, "areaA", "areaB")
	require.NoError(t, err)
	require.Equal(t, []string{"e3", "e2"}, list)

	err = h.CheckRemovable("e2", "areaB")
	require.Error(t, err)
	require.True(t, errs.IsMandatoryApprover(err))
	require.NoError(t, h.CheckRemovable("e3", "areaB"))
}

func TestReconcile(t *testing.T) {
	t.Run(`смена области заменяет обязательных и сохраняет выбранных вручную`, func(t *testing.T) {
		// область A требует e1, область B требует e2, вручную добавлен e3
		result := Reconcile([]string{"e1", "e3"}, refs("e1"), refs("e2"))
		require.Equal(t, []string{"e3", "e2"}, result)
	})
	t.Run(`обязательный прежней области остается, если обязателен и в новой`, func(t *testing.T) {
		result := Reconcile([]string{"e1", "e3"}, refs("e1"), refs("e1", "e2"))
		require.Equal(t, []string{"e1", "e3", "e2"}, result)
	})
	t.Run(`сброс области убирает только ее обязательных`, func(t *testing.T) {
		result := Reconcile([]string{"e1", "e3"}, refs("e1"), nil)
		require.Equal(t, []string{"e3"}, result)
	})
	t.Run(`выбор области для пустого набора дает ее обязательных`, func(t *testing.T) {
		result := Reconcile(nil, nil, refs("e1", "e2"))
		require.Equal(t, []string{"e1", "e2"}, result)
	})
	t.Run(`повторная смена области не создает дубликатов`, func(t *testing.T) {
		result := Reconcile([]string{"e2", "e3"}, refs("e1"), refs("e2", "e3"))
		require.Equal(t, []string{"e2", "e3"}, result)
		seen := map[string]bool{}
		for _, id := range result {
			require.False(t, seen[id], "дубликат %v", id)
			seen[id] = true
		}
	})
	t.Run(`порядок оставшихся не меняется`, func(t *testing.T) {
		result := Reconcile([]string{"e5", "e4", "e1"}, refs("e1"), refs("e6"))
		require.Equal(t, []string{"e5", "e4", "e6"}, result)
	})
}
