package authprovider

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"pic-tools-backend/config"
	"pic-tools-backend/db"
	"pic-tools-backend/errs"
	employeestore "pic-tools-backend/lib/employee/store"
	authutils "pic-tools-backend/lib/utils/auth-utils"
	initchecker "pic-tools-backend/lib/utils/init-checker"
	authapimodels "pic-tools-backend/models/api/auth"
)

// Provider проверка учетных данных во внешнем AD и выдача токена.
// Доступ получают только сотрудники, заведенные в справочнике.
type Provider interface {
	Login(data authapimodels.LoginData) (view authapimodels.LoginView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       employeestore.NewInstance(db.DB),
		adServerURL: config.Conf.Auth.ADServerURL,
		client: &http.Client{
			Timeout: time.Second * time.Duration(config.Conf.Auth.ADTimeoutInSec),
		},
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store       employeestore.Provider
	adServerURL string
	client      *http.Client
}

type adRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adResponse struct {
	Authenticated bool `json:"authenticated"`
}

func (i impl) Login(data authapimodels.LoginData) (view authapimodels.LoginView, err error) {
	logger := log.WithField("username", data.Username)
	if err = data.Validate(); err != nil {
		return authapimodels.LoginView{}, errs.NewValidation(err.Error())
	}
	ok, err := i.checkAD(data.Username, data.Password)
	if err != nil {
		logger.WithError(err).Error("AD сервер недоступен")
		return authapimodels.LoginView{}, errs.NewPermission("сервис аутентификации недоступен")
	}
	if !ok {
		return authapimodels.LoginView{}, errs.NewPermission("неверное имя пользователя или пароль")
	}
	rec, err := i.store.GetByAlias(data.Username)
	if err != nil {
		return authapimodels.LoginView{}, errs.WrapStorage(err, "ошибка поиска сотрудника")
	}
	if rec == nil {
		return authapimodels.LoginView{}, errs.NewPermission("сотрудник не заведен в системе")
	}
	token, err := authutils.GetToken(rec.ID, rec.FullName, rec.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка выпуска токена")
		return authapimodels.LoginView{}, errs.NewPermission("ошибка выпуска токена")
	}
	logger.Info("пользователь аутентифицирован")
	return authapimodels.LoginView{
		Token:      token,
		EmployeeID: rec.ID,
		Alias:      rec.Alias,
		FullName:   rec.FullName,
		IsAdmin:    rec.Role.IsAdmin(),
	}, nil
}

func (i impl) checkAD(username, password string) (bool, error) {
	payload, err := json.Marshal(adRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return false, err
	}
	resp, err := i.client.Post(i.adServerURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, nil
	}
	var result adResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}
	return result.Authenticated, nil
}
