package notioncontent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

// Error kinds. Every failure crossing the accessor boundary matches exactly
// one of these under errors.Is.
var (
	// ErrInvalidInput indicates the remote service rejected the request as
	// malformed, or a caller-supplied parameter failed local validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPermissionDenied indicates an authentication or authorization failure.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound indicates the page or database does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory indicates a listing was requested on a non-directory path.
	ErrNotADirectory = errors.New("not a directory")

	// ErrUnsupported indicates the operation is outside the accessor's
	// capabilities (ranged reads, listing without a configured database).
	ErrUnsupported = errors.New("unsupported operation")

	// ErrUnexpected indicates a remote failure outside the anticipated set.
	ErrUnexpected = errors.New("unexpected error")
)

// AccessError carries the operation, path and error kind of a failed
// accessor call. Kind is one of the sentinel errors above, so callers can
// dispatch with errors.Is.
type AccessError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *AccessError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AccessError) Unwrap() error {
	return e.Kind
}

func accessError(op, path string, kind, err error) *AccessError {
	return &AccessError{Op: op, Path: path, Kind: kind, Err: err}
}

// statusKinds is the fixed translation table from Notion HTTP statuses to
// error kinds. Anything absent falls to ErrUnexpected.
var statusKinds = map[int]error{
	http.StatusBadRequest:   ErrInvalidInput,
	http.StatusUnauthorized: ErrPermissionDenied,
	http.StatusForbidden:    ErrPermissionDenied,
	http.StatusNotFound:     ErrNotFound,
}

// KindForStatus returns the error kind for a remote HTTP status.
func KindForStatus(status int) error {
	if kind, ok := statusKinds[status]; ok {
		return kind
	}
	return ErrUnexpected
}

// TranslateRemoteError maps a failure from the remote transport onto the
// closed taxonomy. It is applied exactly once, where the error crosses from
// the collaborator into this package; the original message survives as
// context. Unexpected failures are logged here since they represent remote
// behavior we did not anticipate. Context cancellation passes through
// untranslated so callers still observe it as cancellation.
func TranslateRemoteError(logger *slog.Logger, op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if logger == nil {
		logger = slog.Default()
	}

	var apiErr *notionapi.APIError
	if errors.As(err, &apiErr) {
		kind := KindForStatus(apiErr.StatusCode)
		if errors.Is(kind, ErrUnexpected) {
			logger.Error("unexpected notion API failure",
				"op", op, "path", path, "status", apiErr.StatusCode, "error", apiErr.Message)
		}
		return accessError(op, path, kind, err)
	}

	logger.Error("notion request failed", "op", op, "path", path, "error", err)
	return accessError(op, path, ErrUnexpected, err)
}
