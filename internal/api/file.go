package api

import (
	"context"
	"fmt"
	"os"

	"github.com/thesavant42/launchdeck/internal/models"
)

// FileSource serves launches from a JSON file on disk instead of the API.
// The file holds the raw upcoming-launches payload.
type FileSource struct {
	Path string
}

// FetchUpcoming reads and maps the file on every call
func (s FileSource) FetchUpcoming(ctx context.Context) ([]models.Launch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseLaunchesFromJSON(data)
}
