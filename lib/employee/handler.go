package employeeprovider

import (
	"pic-tools-backend/db"
	"pic-tools-backend/errs"
	"pic-tools-backend/lib/employee/store"
	initchecker "pic-tools-backend/lib/utils/init-checker"
	employeeapimodels "pic-tools-backend/models/api/employee"
)

type Provider interface {
	Get(id string) (item employeeapimodels.EmployeeView, err error)
	List(search string) (list []employeeapimodels.EmployeeView, err error)
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

type impl struct {
	store store.Provider
}

func (i impl) Get(id string) (item employeeapimodels.EmployeeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, errs.WrapStorage(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, errs.NewNotFound("сотрудник не найден")
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) List(search string) (list []employeeapimodels.EmployeeView, err error) {
	recList, err := i.store.List(search)
	if err != nil {
		return nil, errs.WrapStorage(err, "ошибка получения списка сотрудников")
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, nil
}
