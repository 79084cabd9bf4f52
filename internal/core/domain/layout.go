package domain

import "path/filepath"

const (
	// TabuDirName is the name of the internal metadata directory.
	TabuDirName = ".tabu"

	// ReportsDirName is the name of the run report directory.
	ReportsDirName = "reports"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for run reports.
// It joins .tabu and reports.
func DefaultStorePath() string {
	return filepath.Join(TabuDirName, ReportsDirName)
}
