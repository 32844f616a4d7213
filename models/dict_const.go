package models

import "github.com/pkg/errors"

type PicStatus string

const (
	PicStatusPending  PicStatus = "pending"
	PicStatusApproved PicStatus = "approved"
	PicStatusRejected PicStatus = "rejected"
)

var picStatusHumanName = map[PicStatus]string{
	PicStatusPending:  "На согласовании",
	PicStatusApproved: "Согласован",
	PicStatusRejected: "Отклонен",
}

func (s PicStatus) ToHuman() string {
	if human, exist := picStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s PicStatus) Validate() error {
	switch s {
	case PicStatusPending, PicStatusApproved, PicStatusRejected:
		return nil
	}
	return errors.Errorf("недопустимый статус PIC: %v", string(s))
}

// AllowEdit правка и удаление доступны только для отклоненных PIC
func (s PicStatus) AllowEdit() bool {
	return s == PicStatusRejected
}

type ApprovalDecision string

const (
	DecisionPending  ApprovalDecision = "pending"
	DecisionApproved ApprovalDecision = "approved"
	DecisionRejected ApprovalDecision = "rejected"
)

var decisionHumanName = map[ApprovalDecision]string{
	DecisionPending:  "Ожидает решения",
	DecisionApproved: "Согласовано",
	DecisionRejected: "Отклонено",
}

func (d ApprovalDecision) ToHuman() string {
	if human, exist := decisionHumanName[d]; exist {
		return human
	}
	return string(d)
}

// ValidateFinal решение аппрувера может быть только approved или rejected
func (d ApprovalDecision) ValidateFinal() error {
	switch d {
	case DecisionApproved, DecisionRejected:
		return nil
	}
	return errors.Errorf("недопустимое решение: %v", string(d))
}

type PartNumbersScope string

const (
	PartNumbersAll    PartNumbersScope = "all"
	PartNumbersListed PartNumbersScope = "listed"
)

func (p PartNumbersScope) Validate() error {
	switch p {
	case PartNumbersAll, PartNumbersListed:
		return nil
	}
	return errors.New("не указан охват номеров деталей (all/listed)")
}

type ChangeDuration string

const (
	ChangeTemporary ChangeDuration = "temporary"
	ChangePermanent ChangeDuration = "permanent"
)

func (c ChangeDuration) Validate() error {
	switch c {
	case ChangeTemporary, ChangePermanent:
		return nil
	}
	return errors.New("не указан тип изменения (temporary/permanent)")
}
