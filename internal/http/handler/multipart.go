package handler

import (
	"io"
	"mime/multipart"
)

// readMultipartFile drains one uploaded file into memory. Uploads are
// bounded by the app body limit before they reach a handler.
func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
