// Package kvtext reads and writes table files: a line-oriented text format
// that declares keyed-store tables and their string entries.
//
//	; comment
//	[cameras:99]
//	"main"="perspective"
//	"ui"="ortho"
//
//	[scenes]
//	"level_1"="assets/level_1.scene"
//
// A header names a table and optionally its capacity (DefaultCapacity when
// omitted). Keys and values are double-quoted; \" and \\ are the only escapes.
// A key repeated inside one section is kept; loading it into a table
// overwrites the earlier value.
package kvtext

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/transform"
)

// Pair is one "key"="value" line.
type Pair struct {
	Key   string
	Value string
	Line  int // 1-based source line
}

// Section is one table declaration and its pairs in file order.
type Section struct {
	Name     string
	Capacity int
	Pairs    []Pair
	Line     int
}

// Parse reads a table file encoded as enc.
func Parse(r io.Reader, enc Encoding) ([]*Section, error) {
	dec, err := enc.decoder()
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(transform.NewReader(r, dec))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	var (
		sections []*Section
		current  *Section
		seen     = make(map[string]int)
		lineNo   int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		if strings.HasPrefix(line, SectionOpen) {
			sec, err := parseHeader(line, lineNo)
			if err != nil {
				return nil, err
			}
			if prev, dup := seen[sec.Name]; dup {
				return nil, fmt.Errorf("%w: %q on line %d (first on line %d)",
					ErrDuplicateSection, sec.Name, lineNo, prev)
			}
			seen[sec.Name] = lineNo
			sections = append(sections, sec)
			current = sec
			continue
		}

		pair, err := parsePair(line, lineNo)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, fmt.Errorf("%w: line %d", ErrNoSection, lineNo)
		}
		current.Pairs = append(current.Pairs, pair)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning table file: %w", err)
	}

	return sections, nil
}

// ParseBytes parses an in-memory table file, e.g. one mapped by mmfile.
func ParseBytes(data []byte, enc Encoding) ([]*Section, error) {
	return Parse(bytes.NewReader(data), enc)
}

// parseHeader parses "[name]" or "[name:capacity]".
func parseHeader(line string, lineNo int) (*Section, error) {
	if !strings.HasSuffix(line, SectionClose) {
		return nil, fmt.Errorf("%w: line %d: unterminated header %q", ErrSyntax, lineNo, line)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(line, SectionOpen), SectionClose)

	name, capStr, hasCap := strings.Cut(body, CapacitySeparator)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: line %d: empty table name", ErrSyntax, lineNo)
	}

	capacity := DefaultCapacity
	if hasCap {
		n, err := strconv.Atoi(strings.TrimSpace(capStr))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrCapacity, lineNo, capStr)
		}
		capacity = n
	}

	return &Section{Name: name, Capacity: capacity, Line: lineNo}, nil
}

// parsePair parses `"key"="value"`.
func parsePair(line string, lineNo int) (Pair, error) {
	key, rest, ok := readQuoted(line)
	if !ok || !strings.HasPrefix(rest, ValueAssignment) {
		return Pair{}, fmt.Errorf("%w: line %d: expected \"key\"=\"value\"", ErrSyntax, lineNo)
	}

	value, rest, ok := readQuoted(strings.TrimPrefix(rest, ValueAssignment))
	if !ok || strings.TrimSpace(rest) != "" {
		return Pair{}, fmt.Errorf("%w: line %d: malformed value", ErrSyntax, lineNo)
	}

	return Pair{Key: key, Value: value, Line: lineNo}, nil
}
