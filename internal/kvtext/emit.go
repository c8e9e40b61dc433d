package kvtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/transform"
)

// Emit writes sections in table file syntax, encoded as enc.
// Output parses back to the same sections (line numbers aside). Nothing is
// written when a section has a name or capacity a header cannot carry.
func Emit(w io.Writer, sections []*Section, enc Encoding) error {
	encoder, err := enc.encoder()
	if err != nil {
		return err
	}
	for _, sec := range sections {
		if err := checkHeader(sec); err != nil {
			return err
		}
	}

	tw := transform.NewWriter(w, encoder)
	bw := bufio.NewWriter(tw)

	for i, sec := range sections {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(SectionOpen + sec.Name + CapacitySeparator + strconv.Itoa(sec.Capacity) + SectionClose + "\n")
		for _, p := range sec.Pairs {
			bw.WriteString(Quote + escape(p.Key) + Quote + ValueAssignment + Quote + escape(p.Value) + Quote + "\n")
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing table file: %w", err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("writing table file: %w", err)
	}
	return nil
}

// checkHeader rejects sections whose header would not parse back: names must
// be non-empty, untrimmed and free of the capacity separator and line breaks.
func checkHeader(sec *Section) error {
	name := sec.Name
	if name == "" || name != strings.TrimSpace(name) ||
		strings.Contains(name, CapacitySeparator) || strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: %q", ErrTableName, name)
	}
	if sec.Capacity <= 0 {
		return fmt.Errorf("%w: table %q: %d", ErrCapacity, name, sec.Capacity)
	}
	return nil
}
