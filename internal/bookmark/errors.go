package bookmark

import "errors"

var (
	ErrInvalidJSON     = errors.New("invalid JSON")
	ErrMissingURL      = errors.New("missing url field")
	ErrInvalidFilePath = errors.New("invalid file_path")
)
