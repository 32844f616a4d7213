package employeeapimodels

import (
	"pic-tools-backend/models"
	dbmodels "pic-tools-backend/models/db"
)

type EmployeeView struct {
	ID       string          `json:"id"`
	Alias    string          `json:"alias"`
	FullName string          `json:"full_name"`
	JobTitle string          `json:"job_title"`
	Role     models.UserRole `json:"role"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	return EmployeeView{
		ID:       rec.ID,
		Alias:    rec.Alias,
		FullName: rec.FullName,
		JobTitle: rec.JobTitle,
		Role:     rec.Role,
	}
}
