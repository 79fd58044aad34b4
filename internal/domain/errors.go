package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrEmptyDocument      = errors.New("document text is empty")
	ErrDocumentTooLarge   = errors.New("document text exceeds maximum size")
	ErrNoItemsFound       = errors.New("no items found in document text")
	ErrNoCodesFound       = errors.New("no capital-goods codes found in document text")
	ErrDespachoNotFound   = errors.New("despacho not found")
	ErrItemNotFound       = errors.New("despacho item not found")
	ErrDuplicateSupplier  = errors.New("supplier already exists")
	ErrInvalidReportFmt   = errors.New("invalid report format")
)
