package picprovider

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pic-tools-backend/errs"
	picstore "pic-tools-backend/lib/pic/store"
	"pic-tools-backend/models"
	areaapimodels "pic-tools-backend/models/api/area"
	picapimodels "pic-tools-backend/models/api/pic"
	dbmodels "pic-tools-backend/models/db"
)

type fakeEmployeeStore struct {
	known map[string]bool
}

func (f fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) { return rec.ID, nil }
func (f fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	if !f.known[id] {
		return nil, nil
	}
	return &dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: id}}, nil
}
func (f fakeEmployeeStore) GetByAlias(alias string) (*dbmodels.Employee, error) { return nil, nil }
func (f fakeEmployeeStore) List(search string) ([]dbmodels.Employee, error)     { return nil, nil }
func (f fakeEmployeeStore) GetByIDs(ids []string) ([]dbmodels.Employee, error) {
	list := []dbmodels.Employee{}
	for _, id := range ids {
		if f.known[id] {
			list = append(list, dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: id}})
		}
	}
	return list, nil
}

type fakeApproverSet struct {
	mandatory map[string][]areaapimodels.ApproverRef
}

func (f fakeApproverSet) ResolveMandatory(areaID string) ([]areaapimodels.ApproverRef, error) {
	if areaID == "" {
		return []areaapimodels.ApproverRef{}, nil
	}
	refs, ok := f.mandatory[areaID]
	if !ok {
		return nil, errs.NewNotFound("область не найдена")
	}
	return refs, nil
}

func (f fakeApproverSet) ReconcileForArea(current []string, oldAreaID, newAreaID string) ([]string, error) {
	return current, nil
}

func (f fakeApproverSet) CheckRemovable(approverID, areaID string) error {
	return nil
}

func approvers(ids ...string) []picapimodels.ApproverData {
	result := make([]picapimodels.ApproverData, 0, len(ids))
	for _, id := range ids {
		result = append(result, picapimodels.ApproverData{ApproverID: id})
	}
	return result
}

func newTestImpl() impl {
	return impl{
		employeeStore: fakeEmployeeStore{known: map[string]bool{"e1": true, "e2": true, "e3": true}},
		approverSet: fakeApproverSet{mandatory: map[string][]areaapimodels.ApproverRef{
			"area1": {{ApproverID: "e1", DisplayName: "Сотрудник e1"}},
		}},
	}
}

func TestCheckApprovers(t *testing.T) {
	t.Run(`набор с обязательным аппрувером области проходит`, func(t *testing.T) {
		h := newTestImpl()
		ids, err := h.checkApprovers(picapimodels.PicData{
			AffectedAreaID: "area1",
			Approvers:      approvers("e1", "e3"),
		})
		require.NoError(t, err)
		require.Equal(t, []string{"e1", "e3"}, ids)
	})
	t.Run(`без обязательного аппрувера области набор отклоняется`, func(t *testing.T) {
		h := newTestImpl()
		_, err := h.checkApprovers(picapimodels.PicData{
			AffectedAreaID: "area1",
			Approvers:      approvers("e2", "e3"),
		})
		require.Error(t, err)
		require.True(t, errs.IsMandatoryApprover(err))
	})
	t.Run(`дубликат аппрувера отклоняется`, func(t *testing.T) {
		h := newTestImpl()
		_, err := h.checkApprovers(picapimodels.PicData{
			Approvers: approvers("e2", "e2"),
		})
		require.Error(t, err)
		require.True(t, errs.IsDuplicateApprover(err))
	})
	t.Run(`неизвестный сотрудник не может быть аппрувером`, func(t *testing.T) {
		h := newTestImpl()
		_, err := h.checkApprovers(picapimodels.PicData{
			Approvers: approvers("e2", "ghost"),
		})
		require.Error(t, err)
		require.True(t, errs.IsValidation(err))
	})
	t.Run(`без области проверяются только дубликаты и справочник`, func(t *testing.T) {
		h := newTestImpl()
		ids, err := h.checkApprovers(picapimodels.PicData{
			Approvers: approvers("e2"),
		})
		require.NoError(t, err)
		require.Equal(t, []string{"e2"}, ids)
	})
	t.Run(`несуществующая область`, func(t *testing.T) {
		h := newTestImpl()
		_, err := h.checkApprovers(picapimodels.PicData{
			AffectedAreaID: "ghost",
			Approvers:      approvers("e1"),
		})
		require.Error(t, err)
		require.True(t, errs.IsNotFound(err))
	})
}

type fakePicStore struct {
	recs []dbmodels.Pic
}

func (f fakePicStore) Create(rec dbmodels.Pic) (string, error)           { return rec.ID, nil }
func (f fakePicStore) GetByID(id string) (*dbmodels.Pic, error)          { return nil, nil }
func (f fakePicStore) GetByIDForUpdate(id string) (*dbmodels.Pic, error) { return nil, nil }
func (f fakePicStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f fakePicStore) ReplaceChildren(rec dbmodels.Pic) error { return nil }
func (f fakePicStore) Delete(id string) error                 { return nil }
func (f fakePicStore) List(filter picstore.ListFilter) ([]dbmodels.Pic, int64, error) {
	matched := []dbmodels.Pic{}
	for _, rec := range f.recs {
		if filter.CreatedBy != "" && rec.CreatedBy != filter.CreatedBy {
			continue
		}
		matched = append(matched, rec)
	}
	rowCount := int64(len(matched))
	if filter.Offset >= len(matched) {
		return []dbmodels.Pic{}, rowCount, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, rowCount, nil
}
func (f fakePicStore) ListPendingForApprover(approverID string) ([]dbmodels.Pic, error) {
	return nil, nil
}

func TestListAll(t *testing.T) {
	recs := make([]dbmodels.Pic, 0, 205)
	for idx := 0; idx < 205; idx++ {
		recs = append(recs, dbmodels.Pic{
			BaseModel: dbmodels.BaseModel{ID: fmt.Sprintf("pic-%03d", idx)},
			Status:    models.PicStatusPending,
			CreatedBy: "e1",
		})
	}
	h := impl{store: fakePicStore{recs: recs}}

	t.Run(`выгрузка не обрезается размером страницы`, func(t *testing.T) {
		list, err := h.ListAll(picapimodels.PicFilter{})
		require.NoError(t, err)
		require.Len(t, list, 205)
		require.Equal(t, "pic-000", list[0].ID)
		require.Equal(t, "pic-204", list[204].ID)
	})
	t.Run(`фильтр по автору учитывается`, func(t *testing.T) {
		list, err := h.ListAll(picapimodels.PicFilter{CreatedBy: "e2"})
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

func TestBuildDbPic(t *testing.T) {
	data := picapimodels.PicData{
		AffectedAreaID:     "area1",
		Platform:           "Линия сборки 3",
		PartNumbersScope:   models.PartNumbersListed,
		PartNumbersText:    "PN-100, PN-101",
		ChangeDuration:     models.ChangeTemporary,
		TemporaryType:      "до конца квартала",
		OriginationDate:    "2026-08-01",
		ImplementationDate: "2026-09-15",
		AffectedOperations: "пайка, контроль",
		RevisionReason:     "снижение брака",
		ProcedureSteps: []picapimodels.ProcedureStepData{
			{Step: "обновить оснастку", Responsible: "Иванов", Date: "2026-09-01"},
			{Step: "обучить смену", Responsible: "Петров", Date: "2026-09-05"},
		},
		Validations: []picapimodels.ValidationData{
			{Description: "пробная партия", Responsible: "Сидоров", Date: "2026-09-10"},
		},
		ChangeReason: picapimodels.ChangeReasonData{Quality: true},
	}
	rec := buildDbPic(data)
	require.NotNil(t, rec.AffectedAreaID)
	require.Equal(t, "area1", *rec.AffectedAreaID)
	require.Equal(t, "2026-08-01", rec.OriginationDate.Format("2006-01-02"))
	require.Len(t, rec.ProcedureSteps, 2)
	require.Equal(t, 0, rec.ProcedureSteps[0].StepOrder)
	require.Equal(t, 1, rec.ProcedureSteps[1].StepOrder)
	require.NotNil(t, rec.ChangeReason)
	require.True(t, rec.ChangeReason.Quality)
	require.NotNil(t, rec.Availability)

	t.Run(`пустая область дает NULL ссылку`, func(t *testing.T) {
		data.AffectedAreaID = ""
		rec := buildDbPic(data)
		require.Nil(t, rec.AffectedAreaID)
	})
}
