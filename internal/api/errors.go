package api

import "net/http"

// HTTPError is an error with a status code and a translation key under
// "errors.". Args fill the placeholders of the translated message.
type HTTPError struct {
	Code int
	Key  string
	Args []string
}

func (e HTTPError) Error() string { return e.Key }

// With returns a copy of e carrying placeholder args.
func (e HTTPError) With(args ...string) HTTPError {
	e.Args = args
	return e
}

var (
	ErrBadRequest        = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound          = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed  = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnknownCatalog    = HTTPError{Code: http.StatusNotFound, Key: "unknown_catalog"}
	ErrTooManyUserAgents = HTTPError{Code: http.StatusUnprocessableEntity, Key: "too_many_user_agents"}
	ErrInternal          = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)
