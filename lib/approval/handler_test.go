package approvalprovider

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pic-tools-backend/errs"
	"pic-tools-backend/models"
	picapimodels "pic-tools-backend/models/api/pic"
	dbmodels "pic-tools-backend/models/db"
)

// fakeStore хранит строки в обратном порядке вставки: порядок строк
// в хранилище не гарантирован, выборка обязана сортировать сама
type fakeStore struct {
	entries []dbmodels.ApprovalEntry
	nextID  int
}

func (f *fakeStore) CreateBatch(entries []dbmodels.ApprovalEntry) error {
	for _, e := range entries {
		f.nextID++
		e.ID = string(rune('a' + f.nextID))
		f.entries = append([]dbmodels.ApprovalEntry{e}, f.entries...)
	}
	return nil
}

func (f *fakeStore) ListByPic(picID string) ([]dbmodels.ApprovalEntry, error) {
	list := []dbmodels.ApprovalEntry{}
	for _, e := range f.entries {
		if e.PicID == picID {
			list = append(list, e)
		}
	}
	sort.Slice(list, func(a, b int) bool { return list[a].Position < list[b].Position })
	return list, nil
}

func (f *fakeStore) GetPending(picID, approverID string) (*dbmodels.ApprovalEntry, error) {
	for _, e := range f.entries {
		if e.PicID == picID && e.ApproverID == approverID && e.Decision == models.DecisionPending {
			rec := e
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	for idx, e := range f.entries {
		if e.ID == id {
			if v, ok := updMap["decision"]; ok {
				f.entries[idx].Decision = v.(models.ApprovalDecision)
			}
			if v, ok := updMap["comment"]; ok {
				f.entries[idx].Comment = v.(string)
			}
		}
	}
	return nil
}

func (f *fakeStore) DeleteByPic(picID string) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.PicID != picID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func newTestHandler() (Provider, *fakeStore) {
	store := &fakeStore{}
	return impl{store: store}, store
}

func TestSeed(t *testing.T) {
	t.Run(`для каждого аппрувера заводится ожидающая запись`, func(t *testing.T) {
		h, store := newTestHandler()
		err := h.Seed("pic1", []string{"e1", "e2"})
		require.NoError(t, err)
		require.Len(t, store.entries, 2)
		for _, e := range store.entries {
			require.Equal(t, models.DecisionPending, e.Decision)
		}
	})
	t.Run(`дубликат аппрувера отклоняется до записи в журнал`, func(t *testing.T) {
		h, store := newTestHandler()
		err := h.Seed("pic1", []string{"e1", "e2", "e1"})
		require.Error(t, err)
		require.True(t, errs.IsDuplicateApprover(err))
		require.Empty(t, store.entries)
	})
}

func TestListFor(t *testing.T) {
	t.Run(`журнал возвращается в порядке указания аппруверов`, func(t *testing.T) {
		h, _ := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e3", "e1", "e2"}))
		list, err := h.ListFor("pic1")
		require.NoError(t, err)
		ids := make([]string, 0, len(list))
		for _, e := range list {
			ids = append(ids, e.ApproverID)
		}
		require.Equal(t, []string{"e3", "e1", "e2"}, ids)
	})
	t.Run(`пересозданный журнал сохраняет порядок нового набора`, func(t *testing.T) {
		h, _ := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e1", "e2"}))
		require.NoError(t, h.Reset("pic1", []string{"e2", "e3", "e1"}))
		list, err := h.ListFor("pic1")
		require.NoError(t, err)
		ids := make([]string, 0, len(list))
		for _, e := range list {
			ids = append(ids, e.ApproverID)
		}
		require.Equal(t, []string{"e2", "e3", "e1"}, ids)
	})
}

func TestRecordDecision(t *testing.T) {
	decision := picapimodels.DecisionData{
		Decision: models.DecisionApproved,
		Comment:  "проверено на линии",
	}
	t.Run(`решение фиксируется в ожидающей записи`, func(t *testing.T) {
		h, store := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e1"}))
		err := h.RecordDecision("pic1", "e1", decision)
		require.NoError(t, err)
		require.Equal(t, models.DecisionApproved, store.entries[0].Decision)
	})
	t.Run(`повторное решение того же аппрувера не ожидается`, func(t *testing.T) {
		h, _ := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e1"}))
		require.NoError(t, h.RecordDecision("pic1", "e1", decision))
		err := h.RecordDecision("pic1", "e1", decision)
		require.Error(t, err)
		require.True(t, errs.IsNotFound(err))
	})
	t.Run(`чужой аппрувер не может решать по заявке`, func(t *testing.T) {
		h, _ := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e1"}))
		err := h.RecordDecision("pic1", "e2", decision)
		require.Error(t, err)
		require.True(t, errs.IsNotFound(err))
	})
	t.Run(`решение без комментария не принимается`, func(t *testing.T) {
		h, _ := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e1"}))
		err := h.RecordDecision("pic1", "e1", picapimodels.DecisionData{Decision: models.DecisionApproved})
		require.Error(t, err)
		require.True(t, errs.IsValidation(err))
	})
	t.Run(`pending не является финальным решением`, func(t *testing.T) {
		h, _ := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e1"}))
		err := h.RecordDecision("pic1", "e1", picapimodels.DecisionData{Decision: models.DecisionPending, Comment: "x"})
		require.Error(t, err)
		require.True(t, errs.IsValidation(err))
	})
}

func TestDecisionSequence(t *testing.T) {
	t.Run(`решение после отклонения фиксируется, но заявка остается отклоненной`, func(t *testing.T) {
		h, _ := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e1", "e2"}))
		require.NoError(t, h.RecordDecision("pic1", "e1", picapimodels.DecisionData{
			Decision: models.DecisionRejected,
			Comment:  "риск для качества",
		}))
		status, err := h.ComputeFor("pic1")
		require.NoError(t, err)
		require.Equal(t, models.PicStatusRejected, status)

		require.NoError(t, h.RecordDecision("pic1", "e2", picapimodels.DecisionData{
			Decision: models.DecisionApproved,
			Comment:  "со своей стороны согласен",
		}))
		status, err = h.ComputeFor("pic1")
		require.NoError(t, err)
		require.Equal(t, models.PicStatusRejected, status)
	})
}

func TestReset(t *testing.T) {
	t.Run(`правка заявки уничтожает принятые решения`, func(t *testing.T) {
		h, store := newTestHandler()
		require.NoError(t, h.Seed("pic1", []string{"e1", "e2"}))
		require.NoError(t, h.RecordDecision("pic1", "e1", picapimodels.DecisionData{
			Decision: models.DecisionRejected,
			Comment:  "не согласен",
		}))
		err := h.Reset("pic1", []string{"e1", "e3"})
		require.NoError(t, err)
		require.Len(t, store.entries, 2)
		for _, e := range store.entries {
			require.Equal(t, models.DecisionPending, e.Decision)
			require.Empty(t, e.Comment)
		}
		status, err := h.ComputeFor("pic1")
		require.NoError(t, err)
		require.Equal(t, models.PicStatusPending, status)
	})
}
