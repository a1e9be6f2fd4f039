// Package run persists a manifest per pipeline run so that what a run read,
// wrote and dropped is recorded next to its outputs.
package run

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/KevinSan9/DataPortfolio/internal/utils"
	"github.com/google/uuid"
)

const manifestFileName = "run.json"

// Manifest records one pipeline invocation.
type Manifest struct {
	ID             string    `json:"id"`
	Command        string    `json:"command"`
	Input          string    `json:"input"`
	Outputs        []string  `json:"outputs"`
	Rows           int       `json:"rows"`
	Columns        int       `json:"columns"`
	DroppedColumns []string  `json:"dropped_columns,omitempty"`
	Warnings       []string  `json:"warnings,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// New constructs a manifest with a fresh id and timestamp.
func New(command, input string) *Manifest {
	return &Manifest{
		ID:        uuid.NewString(),
		Command:   command,
		Input:     input,
		CreatedAt: time.Now().UTC(),
	}
}

// Save writes the manifest as run.json into dir using an atomic write.
func (m *Manifest) Save(dir string) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure dir: %w", err)
	}
	data, err := utils.PrettyJSON(m)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, manifestFileName)
	if err := utils.SafeWriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
