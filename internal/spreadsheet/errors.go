package spreadsheet

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrEmptyFile         = errors.New("spreadsheet has no header row")
	ErrReadingFile       = errors.New("error reading spreadsheet")
	ErrNoSheets          = errors.New("workbook has no sheets")
	ErrInvalidDate       = errors.New("invalid date")
)
