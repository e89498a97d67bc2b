package models

// UploadRequest carries one uploaded certificate file into the service
// layer. FileName is the name declared by the uploader and is used only for
// its extension and for presentation; the stored name is generated.
type UploadRequest struct {
	FileName string
	Data     []byte
}
