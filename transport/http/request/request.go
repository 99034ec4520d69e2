// Package request holds the request parsing shared by the HTTP handlers.
package request

import (
	"errors"
	"marquee/shared"
	"marquee/shared/constant"
	"marquee/shared/failure"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ID parses the {id} path parameter. An id that is not a positive integer names no
// entity and is reported as NotFound.
func ID(r *http.Request, entity string) (int, error) {
	return shared.ParseID(chi.URLParam(r, constant.RequestParamID), entity) //nolint:wrapcheck
}

// FormFile reads the uploaded file of a multipart form. A missing file yields nil
// values so struct validation can report the field.
func FormFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return nil, nil, failure.InvalidParameter("request must be a multipart form: " + err.Error()) //nolint:wrapcheck
	}

	file, header, err := r.FormFile(constant.FormFile)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}

	if err != nil {
		return nil, nil, failure.InvalidParameter("failed to read uploaded file: " + err.Error()) //nolint:wrapcheck
	}

	return file, header, nil
}
