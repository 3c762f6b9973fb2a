// Package platform provides the file-system checks and colored status output
// shared by the command and the pipeline.
package platform

import "os"

// FileExists reports whether the named file or directory exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
