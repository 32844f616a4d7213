package initializers

import (
	"context"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"pic-tools-backend/config"
	"pic-tools-backend/fiberlog"
	approvalprovider "pic-tools-backend/lib/approval"
	approverset "pic-tools-backend/lib/approver-set"
	areaprovider "pic-tools-backend/lib/area"
	authprovider "pic-tools-backend/lib/auth"
	employeeprovider "pic-tools-backend/lib/employee"
	filestorage "pic-tools-backend/lib/file-storage"
	notificationprovider "pic-tools-backend/lib/notification"
	picprovider "pic-tools-backend/lib/pic"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	if err := godotenv.Load(); err != nil {
		log.Info("файл .env не найден, используется окружение процесса")
	}
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	if err := filestorage.NewHandler(ctx); err != nil {
		log.WithError(err).Error("Ошибка инициализации файлового хранилища")
	}
	areaprovider.NewHandler()
	employeeprovider.NewHandler()
	approverset.NewHandler()
	approvalprovider.NewHandler()
	notificationprovider.NewHandler()
	picprovider.NewHandler()
	authprovider.NewHandler()
}
