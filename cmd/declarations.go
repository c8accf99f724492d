package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"schemamodel/internal/adapters/out/declfile"
	"schemamodel/internal/adapters/out/openapidecl"
	"schemamodel/internal/core/domain/model/record"
)

// LoadDeclarations reads model declarations from path. JSON files and
// files named *.openapi.yaml / *.openapi.yml are read as OpenAPI documents,
// everything else as a declaration file.
func LoadDeclarations(ctx context.Context, path string, logger *slog.Logger) ([]record.Declaration, error) {
	if !isOpenAPIFile(path) {
		return declfile.Load(path, logger)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read models file: %w", err)
	}
	return openapidecl.Load(ctx, data)
}

// DeclarationSource binds LoadDeclarations to path for the reload job.
func DeclarationSource(path string, logger *slog.Logger) func(ctx context.Context) ([]record.Declaration, error) {
	return func(ctx context.Context) ([]record.Declaration, error) {
		return LoadDeclarations(ctx, path, logger)
	}
}

func isOpenAPIFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".json"):
		return true
	case strings.HasSuffix(name, ".openapi.yaml"), strings.HasSuffix(name, ".openapi.yml"):
		return true
	}
	return false
}
