// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/entitylink/edeval/internal/scoring"
)

// Write persists the trace of a verbose result in the report format.
func Write(w io.Writer, res scoring.Result) error {
	if !res.Verbose() {
		return fmt.Errorf("%w: result has no trace, candidate names are required", ErrReportFormat)
	}
	_, err := io.WriteString(w, scoring.FormatTrace(res.Rows))
	return err
}

// WriteFile writes the report to path, replacing any existing file.
func WriteFile(path string, res scoring.Result) error {
	if !res.Verbose() {
		return fmt.Errorf("%w: result has no trace, candidate names are required", ErrReportFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := Write(f, res); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
