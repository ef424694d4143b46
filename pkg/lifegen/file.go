package lifegen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile emits the program to path. The text goes to a temporary file in
// the same directory that is renamed over path only after a complete write and
// close, so path never holds a partial program.
func WriteFile(path string) (n int64, err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	n, err = Emit(f)
	if cerr := f.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("close output: %w", cerr))
	}
	if err != nil {
		return 0, err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return 0, fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return 0, fmt.Errorf("rename output: %w", err)
	}
	return n, nil
}
