package filestorage

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
	"pic-tools-backend/config"
	"pic-tools-backend/db"
	"pic-tools-backend/errs"
	"pic-tools-backend/lib/file-storage/store"
	initchecker "pic-tools-backend/lib/utils/init-checker"
	dbmodels "pic-tools-backend/models/db"
)

// Provider хранение вложений заявок, к заявке принимается только PDF
type Provider interface {
	UploadAttachment(ctx context.Context, picID, fileName, contentType string, file []byte) (id string, err error)
	GetAttachment(ctx context.Context, fileID string) (rec *dbmodels.FileStorage, data []byte, err error)
}

var Instance Provider

func NewHandler(ctx context.Context) error {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return err
	}
	instance := impl{
		s3client:   minioClient,
		store:      store.NewInstance(db.DB),
		bucketName: config.Conf.S3.BucketName,
	}
	if err = instance.makeBucket(ctx); err != nil {
		return err
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
	return nil
}

type impl struct {
	s3client   *minio.Client
	store      store.Provider
	bucketName string
}

func (i impl) UploadAttachment(ctx context.Context, picID, fileName, contentType string, file []byte) (id string, err error) {
	logger := log.
		WithField("pic_id", picID).
		WithField("file_name", fileName)
	if !isPdf(fileName, contentType) {
		return "", errs.NewValidation("к заявке можно приложить только PDF")
	}
	objectKey := uuid.NewString()
	_, err = i.s3client.PutObject(ctx, i.bucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		return "", errs.WrapStorage(err, "ошибка загрузки файла в хранилище")
	}
	rec := dbmodels.FileStorage{
		Name:        fileName,
		PicID:       picID,
		Type:        dbmodels.PicAttachment,
		ContentType: "application/pdf",
		ObjectKey:   objectKey,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errs.WrapStorage(err, "ошибка сохранения сведений о файле")
	}
	err = db.DB.
		Model(&dbmodels.Pic{}).
		Where("id = ?", picID).
		Update("attachment_id", id).
		Error
	if err != nil {
		return "", errs.WrapStorage(err, "ошибка привязки файла к заявке")
	}
	logger.WithField("file_id", id).Info("вложение загружено")
	return id, nil
}

func (i impl) GetAttachment(ctx context.Context, fileID string) (rec *dbmodels.FileStorage, data []byte, err error) {
	rec, err = i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, errs.WrapStorage(err, "ошибка получения сведений о файле")
	}
	if rec == nil {
		return nil, nil, errs.NewNotFound("файл не найден")
	}
	object, err := i.s3client.GetObject(ctx, i.bucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errs.WrapStorage(err, "ошибка чтения файла из хранилища")
	}
	defer object.Close()
	data, err = io.ReadAll(object)
	if err != nil {
		return nil, nil, errs.WrapStorage(err, "ошибка чтения файла из хранилища")
	}
	return rec, data, nil
}

func (i impl) makeBucket(ctx context.Context) error {
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func isPdf(fileName, contentType string) bool {
	if contentType == "application/pdf" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}
