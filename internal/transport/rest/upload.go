package rest

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
)

const (
	// multipartOverhead is allowed on top of a file limit for the form framing.
	multipartOverhead = 1 << 16
	// multipartMemory is kept in memory while parsing; larger parts spill to disk.
	multipartMemory = 1 << 20
)

// limitFile rejects an uploaded part larger than limit.
func limitFile(header *multipart.FileHeader, limit int64) error {
	if header.Size > limit {
		return &http.MaxBytesError{Limit: limit}
	}
	return nil
}

// uploadError classifies a multipart parsing failure: oversized bodies keep
// their *http.MaxBytesError, anything else is a bad request.
func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return fmt.Errorf("%w: invalid multipart form: %v", errBadRequest, err)
}
