package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"diamonddash/domain/dataset"
	"diamonddash/internal"
	"diamonddash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading CSV and Excel files into a dataset.Table
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
	log      *internal.Logger
}

// NewDataReader creates a reader that picks the format from the file extension
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		log:      internal.DefaultLogger.With("DataReader"),
	}
}

// ReadTable reads the whole file and returns an immutable table with
// inferred column types.
func (r *DataReader) ReadTable() (*dataset.Table, error) {
	r.log.Info("Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("%s file %s", strings.ToUpper(r.fileType), r.filePath))
		}
		return nil, errors.Wrapf(err, "failed to stat %s", r.filePath)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	return r.buildTable(rows)
}

// readExcelRows reads the first sheet of the workbook
func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(errors.DataInvalid(err.Error()), "failed to open Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.DataInvalid("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(errors.DataInvalid(err.Error()), fmt.Sprintf("failed to read sheet %s", sheets[0]))
	}
	r.log.Debug("Sheet %s read in %s (%d rows)", sheets[0], time.Since(startTime), len(rows))

	return rows, nil
}

// readCSVRows reads CSV data. Rows must all have the header's field count.
func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	startTime := time.Now()
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.DataInvalid(err.Error()), "failed to read CSV file")
	}
	r.log.Debug("CSV file read in %s (%d rows)", time.Since(startTime), len(rows))

	return rows, nil
}

const utf8BOM = "\ufeff"

// buildTable converts raw string rows (header first) into typed columns
func (r *DataReader) buildTable(rows [][]string) (*dataset.Table, error) {
	if len(rows) < 2 {
		return nil, errors.DataInvalid(fmt.Sprintf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType)))
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}
	// spreadsheet exports often start with a UTF-8 byte order mark
	if len(headers) > 0 {
		headers[0] = strings.TrimSpace(strings.TrimPrefix(headers[0], utf8BOM))
	}

	cells := make([][]string, len(headers))
	for c := range cells {
		cells[c] = make([]string, 0, len(rows)-1)
	}
	for i, row := range rows[1:] {
		// Excel drops trailing empty cells; CSV rows are already checked by
		// encoding/csv, so anything longer is malformed.
		if len(row) > len(headers) {
			return nil, errors.DataInvalid(fmt.Sprintf("row %d has %d fields, header has %d", i+2, len(row), len(headers)))
		}
		for c := range headers {
			value := ""
			if c < len(row) {
				value = strings.TrimSpace(row[c])
			}
			cells[c] = append(cells[c], value)
		}
	}

	columns := make([]dataset.Column, len(headers))
	for c, header := range headers {
		columns[c] = InferColumn(header, cells[c])
	}

	table, err := dataset.NewTable(r.filePath, columns)
	if err != nil {
		return nil, err
	}

	r.log.Info("%s file processed (%d columns, %d rows, %d numeric)",
		strings.ToUpper(r.fileType), len(headers), table.RowCount(), len(table.NumericColumnNames()))

	return table, nil
}
