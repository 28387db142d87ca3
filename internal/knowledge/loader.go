package knowledge

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/answerdesk/answerdesk/internal/debug"
	aderrors "github.com/answerdesk/answerdesk/internal/errors"
)

// Column names the loader resolves in the header row. Matching is
// case-insensitive and whitespace-tolerant: "  Question " resolves.
const (
	ColumnQuestion = "question"
	ColumnAnswer   = "answer"
)

// defaultIncludes are the glob patterns used for directory loads when the
// config supplies none.
var defaultIncludes = []string{"**/*.xlsx", "**/*.csv"}

// LoadOptions controls how a data path is loaded.
type LoadOptions struct {
	Sheet   string   // xlsx sheet name; empty means the first sheet
	Include []string // glob patterns for directory loads
	Exclude []string // glob patterns excluded from directory loads
}

// Load builds a knowledge table from path. A regular file is loaded by
// extension (.xlsx or .csv); a directory is scanned with the include/exclude
// patterns and every matching file is loaded, concatenated in sorted path
// order so the table order is deterministic.
func Load(path string, opts LoadOptions) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, aderrors.NewLoadError(path, err).WithType(aderrors.ErrorTypeFileNotFound)
	}

	if info.IsDir() {
		return loadDir(path, opts)
	}
	return loadFile(path, opts)
}

func loadFile(path string, opts LoadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path, opts.Sheet)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, aderrors.NewLoadError(path,
			fmt.Errorf("unsupported data format %q (want .xlsx or .csv)", filepath.Ext(path))).
			WithType(aderrors.ErrorTypeFormat)
	}
}

func loadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, aderrors.NewLoadError(path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, aderrors.NewLoadError(path, fmt.Errorf("workbook has no sheets"))
		}
		sheet = sheets[0]
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, aderrors.NewLoadError(path, err).WithSheet(sheet)
	}

	table, err := tableFromCells(path, cells)
	if err != nil {
		if le, ok := err.(*aderrors.LoadError); ok {
			le.WithSheet(sheet)
		}
		return nil, err
	}

	debug.LogLoad("loaded %d rows from %s (sheet %q)\n", table.Len(), path, sheet)
	return table, nil
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, aderrors.NewLoadError(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, like spreadsheet exports
	records, err := reader.ReadAll()
	if err != nil {
		return nil, aderrors.NewLoadError(path, err)
	}

	table, err := tableFromCells(path, records)
	if err != nil {
		return nil, err
	}

	debug.LogLoad("loaded %d rows from %s\n", table.Len(), path)
	return table, nil
}

// tableFromCells resolves the question/answer columns from the header row
// and collects the remaining rows in order. Rows without a question are
// skipped; cell whitespace is trimmed.
func tableFromCells(path string, cells [][]string) (*Table, error) {
	if len(cells) == 0 {
		return nil, aderrors.NewMissingColumnError(path, ColumnQuestion)
	}

	qIdx, aIdx := -1, -1
	for i, name := range cells[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ColumnQuestion:
			if qIdx < 0 {
				qIdx = i
			}
		case ColumnAnswer:
			if aIdx < 0 {
				aIdx = i
			}
		}
	}
	if qIdx < 0 {
		return nil, aderrors.NewMissingColumnError(path, ColumnQuestion)
	}
	if aIdx < 0 {
		return nil, aderrors.NewMissingColumnError(path, ColumnAnswer)
	}

	rows := make([]Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
		row := Row{
			Question: cellAt(record, qIdx),
			Answer:   cellAt(record, aIdx),
		}
		if row.Question == "" {
			continue
		}
		rows = append(rows, row)
	}

	return NewTable(rows), nil
}

// cellAt returns the trimmed cell value, tolerating short records
// (spreadsheet readers omit trailing empty cells).
func cellAt(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// loadDir loads every data file under root matching the include patterns and
// not matching the exclude patterns. Files are parsed concurrently but
// concatenated in sorted path order.
func loadDir(root string, opts LoadOptions) (*Table, error) {
	includes := opts.Include
	if len(includes) == 0 {
		includes = defaultIncludes
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchesAny(includes, rel) || matchesAny(opts.Exclude, rel) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, aderrors.NewLoadError(root, err)
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, aderrors.NewLoadError(root, fmt.Errorf("no data files match include patterns %v", includes))
	}

	tables := make([]*Table, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			t, err := loadFile(path, opts)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows []Row
	for _, t := range tables {
		rows = append(rows, t.Rows()...)
	}
	debug.LogLoad("loaded %d rows from %d files under %s\n", len(rows), len(paths), root)
	return NewTable(rows), nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
