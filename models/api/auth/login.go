package authapimodels

import "github.com/pkg/errors"

type LoginData struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginData) Validate() error {
	if l.Username == "" {
		return errors.New("не указано имя пользователя")
	}
	if l.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type LoginView struct {
	Token      string `json:"token"`
	EmployeeID string `json:"employee_id"`
	Alias      string `json:"alias"`
	FullName   string `json:"full_name"`
	IsAdmin    bool   `json:"is_admin"`
}
