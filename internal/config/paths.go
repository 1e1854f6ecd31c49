package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths centralizes filesystem locations for a generator run. All table
// files land in OutDir; log files (when file output is enabled) in LogsDir.
type Paths struct {
	OutDir  string
	LogsDir string
}

// NewPaths resolves output locations from configuration. Relative paths are
// interpreted against the current working directory.
func NewPaths(cfg *Config) (*Paths, error) {
	outDir, err := filepath.Abs(cfg.Output.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output dir: %w", err)
	}
	logsDir, err := filepath.Abs(filepath.Dir(cfg.Logging.FilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve logs dir: %w", err)
	}
	return &Paths{OutDir: outDir, LogsDir: logsDir}, nil
}

// EnsureDirectories creates the output directory tree if absent
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetTablePath returns the CSV path for a named table
func (p *Paths) GetTablePath(table string) string {
	return filepath.Join(p.OutDir, table+".csv")
}

// GetWorkbookPath returns the path for the optional Excel workbook
func (p *Paths) GetWorkbookPath(filename string) string {
	return filepath.Join(p.OutDir, filename)
}

// GetLogPath returns the path for a named log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
