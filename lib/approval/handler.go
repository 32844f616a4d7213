package approvalprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"pic-tools-backend/db"
	"pic-tools-backend/errs"
	"pic-tools-backend/lib/approval/store"
	initchecker "pic-tools-backend/lib/utils/init-checker"
	"pic-tools-backend/models"
	picapimodels "pic-tools-backend/models/api/pic"
	dbmodels "pic-tools-backend/models/db"
)

// Provider журнал решений аппруверов.
// Записи появляются только пакетно при создании заявки и при ее правке,
// по ходу согласования меняется лишь поле решения.
type Provider interface {
	Seed(picID string, approverIDs []string) error
	Reset(picID string, approverIDs []string) error
	RecordDecision(picID, approverID string, data picapimodels.DecisionData) error
	ListFor(picID string) (list []picapimodels.ApprovalEntryView, err error)
	ComputeFor(picID string) (status models.PicStatus, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: store.NewInstance(tx),
	}
}

type impl struct {
	store store.Provider
}

// Seed заводит по одной ожидающей записи на каждого аппрувера
func (i impl) Seed(picID string, approverIDs []string) error {
	seen := make(map[string]bool, len(approverIDs))
	entries := make([]dbmodels.ApprovalEntry, 0, len(approverIDs))
	for _, approverID := range approverIDs {
		if seen[approverID] {
			return errs.NewDuplicateApprover(errors.Errorf("аппрувер %v указан более одного раза", approverID).Error())
		}
		seen[approverID] = true
		entries = append(entries, dbmodels.ApprovalEntry{
			PicID:      picID,
			ApproverID: approverID,
			Position:   len(entries),
			Decision:   models.DecisionPending,
		})
	}
	err := i.store.CreateBatch(entries)
	if err != nil {
		return errs.WrapStorage(err, "ошибка создания журнала согласования")
	}
	return nil
}

// Reset уничтожает журнал вместе с принятыми решениями и заводит его заново
func (i impl) Reset(picID string, approverIDs []string) error {
	err := i.store.DeleteByPic(picID)
	if err != nil {
		return errs.WrapStorage(err, "ошибка очистки журнала согласования")
	}
	return i.Seed(picID, approverIDs)
}

func (i impl) RecordDecision(picID, approverID string, data picapimodels.DecisionData) error {
	logger := log.
		WithField("pic_id", picID).
		WithField("approver_id", approverID)
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetPending(picID, approverID)
	if err != nil {
		return errs.WrapStorage(err, "ошибка поиска записи согласования")
	}
	if rec == nil {
		return errs.NewNotFound("решение по заявке от этого аппрувера не ожидается")
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"decision":   data.Decision,
		"comment":    data.Comment,
		"decided_at": &now,
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		return errs.WrapStorage(err, "ошибка сохранения решения")
	}
	logger.
		WithField("decision", data.Decision).
		Info("зафиксировано решение аппрувера")
	return nil
}

func (i impl) ListFor(picID string) (list []picapimodels.ApprovalEntryView, err error) {
	recList, err := i.store.ListByPic(picID)
	if err != nil {
		return nil, errs.WrapStorage(err, "ошибка получения журнала согласования")
	}
	list = make([]picapimodels.ApprovalEntryView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, picapimodels.ApprovalEntryConvert(rec))
	}
	return list, nil
}

func (i impl) ComputeFor(picID string) (status models.PicStatus, err error) {
	recList, err := i.store.ListByPic(picID)
	if err != nil {
		return "", errs.WrapStorage(err, "ошибка получения журнала согласования")
	}
	return ComputeStatus(recList), nil
}
