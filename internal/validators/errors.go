package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMonth       = errors.New("invalid reference month, expected YYYY-MM")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrInvalidDepartment  = errors.New("invalid department")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyTable         = errors.New("uploaded file has no header row")
	ErrUnsupportedFile    = errors.New("unsupported file type, expected .csv or .xlsx")
	ErrEmptyCollaborators = errors.New("collaborator filter contains an empty name")
)
