// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/MKhiriev/go-kns/models"
)

// DefaultMaxLineSize bounds one CSV line; long addresses fit well below it.
const DefaultMaxLineSize = 1 << 20

// ProgressFunc receives the number of processed data lines and the total
// number of data lines after every line.
type ProgressFunc func(processed, total int)

// Decoder parses records CSV files.
type Decoder struct {
	maxLineSize int
}

// NewDecoder constructs a [Decoder] with [DefaultMaxLineSize].
func NewDecoder() *Decoder {
	return &Decoder{maxLineSize: DefaultMaxLineSize}
}

// Decode reads src twice: once to count lines, once to parse them. The
// first line is a header and is never parsed. Rows with fewer than
// [models.CSVColumnCount] tokens are skipped. Any read error or context
// cancellation discards every row parsed so far. progress may be nil.
func (d *Decoder) Decode(ctx context.Context, src io.ReadSeeker, progress ProgressFunc) ([]models.Record, error) {
	lines, err := d.countLines(ctx, src)
	if err != nil {
		return nil, err
	}

	total := lines - 1
	if total <= 0 {
		return nil, ErrEmptyFile
	}

	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	scanner := d.newLineScanner(src)
	records := make([]models.Record, 0, total)

	// header
	if !scanner.Scan() {
		if err = scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
		}
		return nil, ErrEmptyFile
	}

	processed := 0
	for scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		tokens := SplitLine(scanner.Text())
		if len(tokens) >= models.CSVColumnCount {
			records = append(records, models.RecordFromCSVFields(tokens))
		}

		processed++
		if progress != nil {
			progress(processed, total)
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return records, nil
}

func (d *Decoder) countLines(ctx context.Context, r io.Reader) (int, error) {
	scanner := d.newLineScanner(r)

	lines := 0
	for scanner.Scan() {
		lines++
		if lines%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return lines, ctx.Err()
}

// newLineScanner yields lines with "\n" or "\r\n" stripped and a leading
// UTF-8 byte order mark removed.
func (d *Decoder) newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), d.maxLineSize)
	return scanner
}

// SplitLine splits line on every comma followed by an even number of double
// quotes, then trims each token and strips one pair of surrounding quotes.
func SplitLine(line string) []string {
	remaining := strings.Count(line, `"`)

	tokens := make([]string, 0, models.CSVColumnCount)
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			remaining--
		case ',':
			if remaining%2 == 0 {
				tokens = append(tokens, cleanToken(line[start:i]))
				start = i + 1
			}
		}
	}

	return append(tokens, cleanToken(line[start:]))
}

func cleanToken(token string) string {
	token = strings.TrimSpace(token)
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		return token[1 : len(token)-1]
	}
	return token
}

// Header is the first line written by [Encode].
const Header = "Name,Aadhaar,PAN,DOB,Mobile,Bank Account,CIF,Address,Remark\n"

// Encode writes the header line followed by one line per record. Every
// field is wrapped in double quotes as is; rows are separated by "\n" and
// the last row has no line terminator.
func Encode(w io.Writer, records []models.Record) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Header); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	for i, r := range records {
		if i > 0 {
			bw.WriteByte('\n')
		}
		for j, field := range r.CSVFields() {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte('"')
			bw.WriteString(field)
			bw.WriteByte('"')
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	return nil
}
