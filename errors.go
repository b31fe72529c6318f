package tilespin

import (
	"errors"
	"fmt"
)

var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrBadTileSize    = errors.New("bad tile size")
)

// StartupError reports the pipeline step that failed while loading.
// Every startup failure is fatal.
type StartupError struct {
	Step string
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup %s: %v", e.Step, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}
