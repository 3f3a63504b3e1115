package output

import "errors"

// ErrEmptyFile is wrapped in a *nanobanana.FileError when a prompt file is blank.
var ErrEmptyFile = errors.New("file is empty")

// ErrOutsideDir is wrapped in a *nanobanana.FileError when a prompt file name
// resolves outside the prompt directory.
var ErrOutsideDir = errors.New("path escapes prompt directory")
