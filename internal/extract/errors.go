package extract

import "errors"

var (
	ErrTextTooShort = errors.New("text is too short to extract tasks from")
)
