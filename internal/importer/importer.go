package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	"ethela-storefront/internal/schema"
	"go.uber.org/zap"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// RowError is a CSV row that was skipped.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// Result summarises an import run.
type Result struct {
	Imported int
	Skipped  []RowError
}

// CSVImporter reads product rows with the catalog field names as headers
// (name, description, price, image_url, blockchain_url, featured) and creates
// a product per valid row. Unknown columns are ignored.
type CSVImporter struct {
	reader *csv.Reader
	writer ProductWriter
	dryRun bool
	logger *zap.Logger
}

func NewCSVImporter(r io.Reader, writer ProductWriter, logger *zap.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader: csvr,
		writer: writer,
		logger: logging.OrNop(logger).Named("importer"),
	}
}

// DryRun validates rows without writing them.
func (i *CSVImporter) DryRun(v bool) *CSVImporter {
	i.dryRun = v
	return i
}

// Run validates every row and creates the valid ones. Invalid rows are
// reported in Result.Skipped; a write failure aborts the run.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	var res Result

	headers, err := i.reader.Read()
	if err != nil {
		return res, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return res, fmt.Errorf("%w: missing name column", domain.ErrInvalidInput)
	}
	if _, ok := index["price"]; !ok {
		return res, fmt.Errorf("%w: missing price column", domain.ErrInvalidInput)
	}

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row: %w", err)
		}
		line, _ := i.reader.FieldPos(0)
		if blank(record) {
			continue
		}

		p, err := schema.Products.Build(formOf(record, index))
		if err != nil {
			res.Skipped = append(res.Skipped, RowError{Line: line, Err: err})
			i.logger.Warn("skipping row", zap.Int("line", line), zap.Error(err))
			continue
		}
		if i.dryRun {
			res.Imported++
			continue
		}
		if _, err := i.writer.Create(ctx, p); err != nil {
			return res, fmt.Errorf("create product %q (line %d): %w", p.Name, line, err)
		}
		res.Imported++
	}
	return res, nil
}

func formOf(record []string, index map[string]int) schema.Form {
	f := schema.Products.Blank()
	for _, fd := range schema.Products.Fields {
		if v, ok := pick(record, index, fd.Name); ok {
			f[fd.Name] = v
		}
	}
	return f
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) (string, bool) {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[pos]), true
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
