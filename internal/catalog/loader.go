package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// SeedProduct is one catalogue record in a seed file. Seed files are gzipped
// JSON lines, one product per line.
type SeedProduct struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Loader reads catalogue seed files from some backing store.
type Loader interface {
	// Load reads one seed file and returns its product records.
	Load(ctx context.Context, source string) ([]SeedProduct, error)
}

// fileLoader implements Loader for reading gzipped seed files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a gzipped JSON-lines seed file from the local file system.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]SeedProduct, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalogue seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	products, err := decodeSeedLines(ctx, gzipReader)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading seed file")
		return nil, fmt.Errorf("error reading seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("catalogue seed file loaded successfully")

	return products, nil
}

// decodeSeedLines scans a JSON-lines stream into product records, checking
// for cancellation between lines.
func decodeSeedLines(ctx context.Context, r io.Reader) ([]SeedProduct, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []SeedProduct
	lineNumber := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p SeedProduct
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("malformed record on line %d: %w", lineNumber, err)
		}
		if p.SKU == "" || p.Name == "" {
			return nil, fmt.Errorf("record on line %d is missing sku or name", lineNumber)
		}
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
