package ledger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteRows writes each row followed by a newline.
func WriteRows(w io.Writer, rows []string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile replaces the named file with rows. The rows are written to a
// temporary file in the same directory which is then renamed over path,
// so an existing file is never left partially written.
func WriteFile(path string, rows []string) error {
	fd, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmp := fd.Name()
	defer os.Remove(tmp)

	if err := WriteRows(fd, rows); err != nil {
		fd.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
