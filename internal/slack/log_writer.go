package slack

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileLogWriter writes transcripts to files on disk
type FileLogWriter struct {
	dir string
}

// NewFileLogWriter creates a log writer that stores files in the given directory
func NewFileLogWriter(dir string) *FileLogWriter {
	return &FileLogWriter{dir: dir}
}

// Dir returns the directory where files are written
func (w *FileLogWriter) Dir() string {
	return w.dir
}

// WriteLog writes content to <dir>/<name>.log, replacing any previous file
func (w *FileLogWriter) WriteLog(name string, content string) (FileRef, error) {
	filename := logFileName(name)
	filePath := filepath.Join(w.dir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return writeContent(file, filePath, filename, content)
}

// WriteTemp writes content to a uniquely named file in the log directory.
// The caller owns the file and must remove it.
func (w *FileLogWriter) WriteTemp(name string, content string) (FileRef, error) {
	file, err := os.CreateTemp(w.dir, strings.TrimSuffix(logFileName(name), ".log")+"-*.log")
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer file.Close()

	ref, err := writeContent(file, file.Name(), filepath.Base(file.Name()), content)
	if err != nil {
		os.Remove(file.Name())
		return FileRef{}, err
	}
	return ref, nil
}

func writeContent(file *os.File, path, name, content string) (FileRef, error) {
	bw := bufio.NewWriter(file)
	if _, err := bw.WriteString(content); err != nil {
		return FileRef{}, fmt.Errorf("failed to write data: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return FileRef{}, fmt.Errorf("failed to flush buffer: %w", err)
	}

	fi, err := file.Stat()
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to stat file: %w", err)
	}

	return FileRef{
		Path:  path,
		Name:  name,
		Bytes: fi.Size(),
		Lines: strings.Count(content, "\n"),
	}, nil
}

// logFileName maps a channel name to its log file name
func logFileName(name string) string {
	name = strings.TrimPrefix(name, "#")
	name = strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(name)
	return name + ".log"
}
