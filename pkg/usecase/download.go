package usecase

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJSON = "application/json"
)

// Download is a file offered to the user
type Download struct {
	FileName    string
	ContentType string
	Data        []byte
}
