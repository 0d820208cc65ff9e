package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	logFileName = "readably.log"
	logFilePerm = 0o600
	logDirPerm  = 0o750
)

// RotatorConfig bounds the size and number of log files.
type RotatorConfig struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Rotator is an io.WriteCloser appending to Dir/readably.log. The file is
// renamed with a timestamp suffix once it would exceed MaxSizeMB.
type Rotator struct {
	mu   sync.Mutex
	cfg  RotatorConfig
	file *os.File
	size int64
}

// NewRotator opens or creates the current log file.
func NewRotator(cfg RotatorConfig) (*Rotator, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("log directory cannot be empty")
	}
	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &Rotator{cfg: cfg}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the current log file path.
func (r *Rotator) Path() string {
	return filepath.Join(r.cfg.Dir, logFileName)
}

func (r *Rotator) maxBytes() int64 {
	return int64(r.cfg.MaxSizeMB) << 20
}

func (r *Rotator) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = f
	return nil
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if limit := r.maxBytes(); limit > 0 && r.size > 0 && r.size+int64(len(p)) > limit {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *Rotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.file = nil

	backup := r.backupName(time.Now())
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.cfg.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

// backupName picks an unused name for the rotated file.
func (r *Rotator) backupName(now time.Time) string {
	base := r.Path() + "." + now.Format("2006-01-02-15-04-05.000")
	name := base
	for i := 1; ; i++ {
		_, errPlain := os.Stat(name)
		_, errGz := os.Stat(name + ".gz")
		if os.IsNotExist(errPlain) && os.IsNotExist(errGz) {
			return name
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
}

func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// prune removes backups older than MaxAgeDays, then the oldest beyond MaxBackups.
func (r *Rotator) prune() {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return
	}

	type backup struct {
		name    string
		modTime time.Time
	}
	var backups []backup
	maxAge := time.Duration(r.cfg.MaxAgeDays) * 24 * time.Hour

	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), logFileName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && time.Since(info.ModTime()) > maxAge {
			_ = os.Remove(filepath.Join(r.cfg.Dir, e.Name()))
			continue
		}
		backups = append(backups, backup{name: e.Name(), modTime: info.ModTime()})
	}

	if r.cfg.MaxBackups <= 0 || len(backups) <= r.cfg.MaxBackups {
		return
	}

	// Names embed the rotation time, so they order like their mod times.
	slices.SortFunc(backups, func(a, b backup) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for _, b := range backups[:len(backups)-r.cfg.MaxBackups] {
		_ = os.Remove(filepath.Join(r.cfg.Dir, b.name))
	}
}

// Close closes the current file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
