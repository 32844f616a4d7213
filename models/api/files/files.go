package filesapimodels

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PicID       string `json:"pic_id"`
	ContentType string `json:"content_type"`
}
