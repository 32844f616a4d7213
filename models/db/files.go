package dbmodels

type FileStorage struct {
	BaseModel
	Name        string
	PicID       string `gorm:"type:varchar(36);index"`
	Type        FileType
	ContentType string
	ObjectKey   string `gorm:"type:varchar(255)"`
}

type FileType string

const (
	PicAttachment FileType = "pic_attachment"
)
