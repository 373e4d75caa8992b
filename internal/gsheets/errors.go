// ABOUTME: Error taxonomy for the spreadsheet source boundary.
// ABOUTME: Maps Google API failures onto sentinel errors for errors.Is checks.
package gsheets

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

var (
	// ErrAuthentication marks invalid or missing credentials.
	ErrAuthentication = errors.New("spreadsheet authentication failed")

	// ErrNotFound marks a missing spreadsheet or worksheet.
	ErrNotFound = errors.New("spreadsheet or worksheet not found")
)

// mapAPIError classifies a Sheets API failure. There is no retry
// policy anywhere in the pipeline, so every failure is terminal.
func mapAPIError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %v", ErrAuthentication, op, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
		case http.StatusBadRequest:
			// The API reports a missing worksheet as an unparseable range.
			if strings.Contains(gerr.Message, "Unable to parse range") {
				return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
			}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
