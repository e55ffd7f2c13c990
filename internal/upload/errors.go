package upload

import "errors"

var (
	// ErrMissingOwner means the request carried no owner id form field. It
	// is raised before any file is placed under the upload root.
	ErrMissingOwner = errors.New("missing owner id in request body")

	ErrTooManyFiles = errors.New("too many files in request")

	// ErrUnsafeName guards the writer against a stored name that would
	// resolve outside the upload directory.
	ErrUnsafeName = errors.New("unsafe stored filename")
)
