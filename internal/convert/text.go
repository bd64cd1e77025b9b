// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"os"
)

// TextConverter reads a file that already holds extracted text.
type TextConverter struct{}

// Convert returns the contents of path.
func (TextConverter) Convert(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text %s: %w", path, err)
	}
	return string(data), nil
}
