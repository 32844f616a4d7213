package dbmodels

import "pic-tools-backend/models"

// Employee справочник сотрудников, источник идентификаторов для аппруверов
type Employee struct {
	BaseModel
	Alias    string          `gorm:"type:varchar(255);uniqueIndex"`
	FullName string          `gorm:"type:varchar(255)"`
	JobTitle string          `gorm:"type:varchar(255)"`
	Role     models.UserRole `gorm:"type:varchar(100)"`
}
