package cli

// This file contains run recording functionality for saving run metadata
// next to the collected result files.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdbcheck/gdbcheck/model"
)

func (a *App) recordRun(run *model.Run, resultsDir string) error {
	metadataPath := filepath.Join(resultsDir, "run.json")
	metadataJSON, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	if err := os.WriteFile(metadataPath, metadataJSON, 0644); err != nil {
		return fmt.Errorf("failed to write run metadata: %w", err)
	}

	a.logger.Debug().Str("path", metadataPath).Msg("Recorded run")
	return nil
}
