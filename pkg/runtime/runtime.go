// Package runtime locates and opens the files storefront writes while running.
package runtime

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
)

const (
	XDGName        = "storefront"
	DefaultLogFile = "storefront.log"
)

// File returns a path for filename inside the XDG runtime directory, creating
// parent directories as needed.
func File(filename string) (string, error) {
	return xdg.RuntimeFile(fmt.Sprintf("%s/%s", XDGName, filename))
}

// OpenLog opens path for appending. An empty path selects DefaultLogFile in
// the runtime directory.
func OpenLog(path string) (*os.File, error) {
	var err error
	if path == "" {
		path, err = File(DefaultLogFile)
		if err != nil {
			return nil, fmt.Errorf("unable to determine log file: %w", err)
		}
	} else {
		path, err = homedir.Expand(path)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", path, err)
	}
	return f, nil
}
