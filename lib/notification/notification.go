package notificationprovider

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
	"pic-tools-backend/config"
	"pic-tools-backend/db"
	employeestore "pic-tools-backend/lib/employee/store"
	"pic-tools-backend/lib/smtp"
	initchecker "pic-tools-backend/lib/utils/init-checker"
	"pic-tools-backend/models"
	dbmodels "pic-tools-backend/models/db"
)

// Provider письма по событиям воркфлоу. Отправка асинхронная,
// сбой доставки только логируется и не влияет на результат операции.
type Provider interface {
	PicCreated(pic dbmodels.Pic)
	ApprovalRequested(pic dbmodels.Pic, approverIDs []string)
	DecisionRecorded(pic dbmodels.Pic, approverID string, decision models.ApprovalDecision, comment string)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		employeeStore: employeestore.NewInstance(db.DB),
		from:          config.Conf.Smtp.From,
		emailDomain:   config.Conf.Smtp.EmailDomain,
	}
	initchecker.CheckInit(
		"employeeStore", instance.employeeStore,
	)
	Instance = instance
}

type impl struct {
	employeeStore employeestore.Provider
	from          string
	emailDomain   string
}

func (i impl) PicCreated(pic dbmodels.Pic) {
	go func() {
		logger := log.WithField("pic_id", pic.ID)
		recipients, err := i.resolveEmails([]string{pic.CreatedBy})
		if err != nil {
			logger.WithError(err).Error("ошибка получения адреса автора заявки")
			return
		}
		if len(recipients) == 0 {
			return
		}
		subject := fmt.Sprintf("PIC Tools - заявка %s создана", pic.Platform)
		body := fmt.Sprintf(
			"<p>Заявка на изменение процесса создана и отправлена на согласование.</p>"+
				"<p>Платформа: <b>%s</b><br>Причина ревизии: %s</p>",
			pic.Platform, pic.RevisionReason)
		i.send(recipients, subject, body, logger)
	}()
}

func (i impl) ApprovalRequested(pic dbmodels.Pic, approverIDs []string) {
	go func() {
		logger := log.WithField("pic_id", pic.ID)
		recipients, err := i.resolveEmails(approverIDs)
		if err != nil {
			logger.WithError(err).Error("ошибка получения адресов аппруверов")
			return
		}
		if len(recipients) == 0 {
			return
		}
		subject := fmt.Sprintf("PIC Tools - заявка %s ждет вашего решения", pic.Platform)
		body := fmt.Sprintf(
			"<p>Заявка на изменение процесса отправлена на согласование.</p>"+
				"<p>Платформа: <b>%s</b><br>Причина ревизии: %s</p>"+
				"<p>Зайдите в PIC Tools, чтобы принять решение.</p>",
			pic.Platform, pic.RevisionReason)
		i.send(recipients, subject, body, logger)
	}()
}

func (i impl) DecisionRecorded(pic dbmodels.Pic, approverID string, decision models.ApprovalDecision, comment string) {
	go func() {
		logger := log.WithField("pic_id", pic.ID)
		recipients, err := i.resolveEmails([]string{pic.CreatedBy})
		if err != nil {
			logger.WithError(err).Error("ошибка получения адреса автора заявки")
			return
		}
		if len(recipients) == 0 {
			return
		}
		approverName := approverID
		approver, err := i.employeeStore.GetByID(approverID)
		if err == nil && approver != nil {
			approverName = approver.FullName
		}
		subject := fmt.Sprintf("PIC Tools - по заявке %s принято решение", pic.Platform)
		body := fmt.Sprintf(
			"<p>%s: <b>%s</b></p>"+
				"<p>Комментарий: %s</p>"+
				"<p>Текущий статус заявки: %s</p>",
			approverName, decision.ToHuman(), comment, pic.Status.ToHuman())
		i.send(recipients, subject, body, logger)
	}()
}

func (i impl) send(to []string, subject, body string, logger *log.Entry) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", i.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	if err := smtp.Instance.Send(to, msg); err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления")
	}
}

func (i impl) resolveEmails(employeeIDs []string) ([]string, error) {
	recList, err := i.employeeStore.GetByIDs(employeeIDs)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(recList))
	for _, rec := range recList {
		if rec.Alias == "" {
			continue
		}
		result = append(result, fmt.Sprintf("%s@%s", rec.Alias, i.emailDomain))
	}
	return result, nil
}
