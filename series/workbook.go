package series

import (
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads a series from the first sheet of a spreadsheet. The
// first cell of every non-empty row is treated as a source line, so a cell
// may hold a sample or a step directive.
func ReadWorkbook(path string, window int) (s *Series, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	p := newLineParser(path, window)
	for i, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		if err := p.line(i+1, row[0]); err != nil {
			return nil, err
		}
	}

	return p.complete(), nil
}
