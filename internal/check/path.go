package check

import "os"

// PathExists reports whether path resolves on the filesystem. Every Stat
// error, including a symlink loop, counts as "does not exist".
func PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
