package errs

import "github.com/pkg/errors"

// Классы ошибок воркфлоу согласования. Хендлеры возвращают их как есть,
// маппинг на HTTP коды выполняется в одном месте (controllers.SendError).

type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

type NotFoundError struct {
	Msg string
}

func (e NotFoundError) Error() string {
	return e.Msg
}

type MandatoryApproverError struct {
	Msg string
}

func (e MandatoryApproverError) Error() string {
	return e.Msg
}

type DuplicateApproverError struct {
	Msg string
}

func (e DuplicateApproverError) Error() string {
	return e.Msg
}

type PermissionError struct {
	Msg string
}

func (e PermissionError) Error() string {
	return e.Msg
}

type StorageError struct {
	Err error
}

func (e StorageError) Error() string {
	return e.Err.Error()
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) error {
	return ValidationError{Msg: msg}
}

func NewNotFound(msg string) error {
	return NotFoundError{Msg: msg}
}

func NewMandatoryApprover(msg string) error {
	return MandatoryApproverError{Msg: msg}
}

func NewDuplicateApprover(msg string) error {
	return DuplicateApproverError{Msg: msg}
}

func NewPermission(msg string) error {
	return PermissionError{Msg: msg}
}

// WrapStorage оборачивает ошибку БД, ядро не ретраит такие ошибки
func WrapStorage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return StorageError{Err: errors.Wrap(err, msg)}
}

func IsValidation(err error) bool {
	var e ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e NotFoundError
	return errors.As(err, &e)
}

func IsMandatoryApprover(err error) bool {
	var e MandatoryApproverError
	return errors.As(err, &e)
}

func IsDuplicateApprover(err error) bool {
	var e DuplicateApproverError
	return errors.As(err, &e)
}

func IsPermission(err error) bool {
	var e PermissionError
	return errors.As(err, &e)
}
