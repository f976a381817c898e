package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. The
// orchestrator checks them with errors.Is to distinguish auth failures
// (skip quietly, the auth collaborator handles re-authentication) from
// transport failures (abort the pass, retry on the next trigger).
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
