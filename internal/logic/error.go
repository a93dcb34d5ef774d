package logic

import "errors"

var (
	ErrInvalidCase      = errors.New("invalid case id")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrBillNotFound     = errors.New("bill not found for the specified period")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCompanyNameTaken = errors.New("company name already in use")
	ErrJSONObjRequired  = errors.New("jsonObj is required")
	ErrPermissionDenied = errors.New("permission denied")
)
