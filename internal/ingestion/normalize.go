package ingestion

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/campaign-planner/internal/types"
)

// Option configures normalization
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Table is the outcome of one successful decoding strategy
type Table struct {
	Encoding    string
	Delimiter   rune
	Records     []types.KeywordRecord
	SkippedRows int
}

// NormalizeFile reads a keyword export and returns its canonical records tagged with source.
// It never fails: a missing, unreadable or unrecognized file yields no records.
func NormalizeFile(path, source string, opts ...Option) []types.KeywordRecord {
	o := newOptions(opts)
	log := o.logger.With(zap.String("path", path), zap.String("source", source))

	if path == "" {
		log.Debug("no input file configured")
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("keyword file unreadable, skipping", zap.Error(err))
		return nil
	}
	return normalize(data, source, log)
}

// Normalize parses raw export bytes the same way NormalizeFile does
func Normalize(data []byte, source string, opts ...Option) []types.KeywordRecord {
	o := newOptions(opts)
	return normalize(data, source, o.logger.With(zap.String("source", source)))
}

func normalize(data []byte, source string, log *zap.Logger) []types.KeywordRecord {
	table, err := ParseTable(data, log)
	if err != nil {
		log.Warn("no keyword table recognized, skipping", zap.Error(err))
		return nil
	}
	for i := range table.Records {
		table.Records[i].Source = source
	}
	log.Info("keyword file normalized",
		zap.String("encoding", table.Encoding),
		zap.String("delimiter", string(table.Delimiter)),
		zap.Int("rows", len(table.Records)),
		zap.Int("skipped_rows", table.SkippedRows))
	return table.Records
}

// ParseTable tries each encoding in order and returns the first table that has a header,
// at least two columns and at least one keyword row. The last strategy's error is
// returned when all fail.
func ParseTable(data []byte, log *zap.Logger) (*Table, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var lastErr error = &HeaderNotFoundError{}
	for _, dec := range decoders {
		text, err := dec.decode(data)
		if err != nil {
			lastErr = &DecodeError{Encoding: dec.name, Cause: err}
			log.Debug("decode failed", zap.String("encoding", dec.name), zap.Error(err))
			continue
		}
		table, err := parseText(text)
		if err != nil {
			lastErr = err
			log.Debug("encoding rejected", zap.String("encoding", dec.name), zap.Error(err))
			continue
		}
		table.Encoding = dec.name
		return table, nil
	}
	return nil, lastErr
}

func parseText(text string) (*Table, error) {
	lines := splitLines(text)
	headerAt, err := findHeader(lines)
	if err != nil {
		return nil, err
	}
	delim := detectDelimiter(lines[headerAt])

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerAt:], "\n")))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, &TooFewColumnsError{Columns: 0}
	}
	if len(header) < 2 {
		return nil, &TooFewColumnsError{Columns: len(header)}
	}
	cols := newColumnIndex(header)

	table := &Table{Delimiter: delim}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			table.SkippedRows++
			continue
		}
		if err != nil {
			break
		}
		if len(row) > len(header) {
			table.SkippedRows++
			continue
		}
		if rec, ok := toRecord(row, cols); ok {
			table.Records = append(table.Records, rec)
		}
	}

	if len(table.Records) == 0 {
		return nil, &NoRowsError{}
	}
	return table, nil
}

// toRecord maps one row to a canonical record; short rows read absent cells as empty
func toRecord(row []string, cols columnIndex) (types.KeywordRecord, bool) {
	keyword := strings.ToLower(field(row, cols.keyword))
	if keyword == "" {
		return types.KeywordRecord{}, false
	}
	return types.KeywordRecord{
		Keyword:            keyword,
		AvgMonthlySearches: ParseAmount(field(row, cols.volume)),
		Competition:        field(row, cols.competition),
		TopOfPageBidLow:    ParseAmount(field(row, cols.bidLow)),
		TopOfPageBidHigh:   ParseAmount(field(row, cols.bidHigh)),
		Location:           field(row, cols.location),
		LandingPage:        field(row, cols.landingPage),
	}, true
}
