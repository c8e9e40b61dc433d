package main

import (
	"fmt"

	"github.com/joshuapare/isolate/hmap"
	"github.com/joshuapare/isolate/internal/kvtext"
	"github.com/joshuapare/isolate/internal/logger"
	"github.com/joshuapare/isolate/internal/mmfile"
	"github.com/joshuapare/isolate/memtrack"
)

// namedTable is a table built from one section of a table file.
type namedTable struct {
	section *kvtext.Section
	table   *hmap.Table[string, string]
}

// loadTables parses path and builds one string table per section, reporting
// every table allocation to tr. A non-empty only restricts loading to that
// section.
func loadTables(path, only string, tr *memtrack.Tracker) ([]namedTable, error) {
	enc, err := kvtext.ParseEncoding(encoding)
	if err != nil {
		return nil, err
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer cleanup()

	sections, err := kvtext.ParseBytes(data, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var tables []namedTable
	for _, sec := range sections {
		if only != "" && sec.Name != only {
			continue
		}
		t := hmap.NewString[string](sec.Capacity, hmap.WithName(sec.Name), hmap.WithAllocator(tr))
		for _, p := range sec.Pairs {
			t.Insert(p.Key, p.Value)
		}
		logger.Debug("table loaded", "table", sec.Name, "capacity", sec.Capacity, "entries", t.Len())
		tables = append(tables, namedTable{section: sec, table: t})
	}

	if only != "" && len(tables) == 0 {
		return nil, fmt.Errorf("section %q not found in %s", only, path)
	}
	return tables, nil
}

// deleteTables tears every table down.
func deleteTables(tables []namedTable) {
	for _, nt := range tables {
		nt.table.Delete()
	}
}

// findTable returns the table named name.
func findTable(tables []namedTable, name string) (*hmap.Table[string, string], bool) {
	for _, nt := range tables {
		if nt.section.Name == name {
			return nt.table, true
		}
	}
	return nil, false
}
