package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// textExtensions are the file extensions accepted for word lists.
// System word lists such as /usr/share/dict/words have none.
var textExtensions = []string{"", ".txt", ".dic", ".words"}

// ValidateTextFile checks that path is a readable, non-empty regular file
// with a word list extension.
func ValidateTextFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat dictionary %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dictionary %s is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("dictionary %s is empty", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range textExtensions {
		if ext == valid {
			return nil
		}
	}
	return fmt.Errorf("dictionary %s has invalid extension %s (expected one of %q)", path, ext, textExtensions)
}
