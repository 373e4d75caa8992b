// ABOUTME: Google Sheets client for the workout spreadsheet.
// ABOUTME: Reads the three input worksheets and resets them after a load.
package gsheets

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/harperreed/gymsheet/internal/config"
)

const (
	// Worksheet names, fixed by the spreadsheet template.
	SessionSheet   = "Session_Info"
	ExercisesSheet = "Exercises"
	InputSheet     = "Workout_Input"

	// inputClearRange clears data rows but keeps the header, so the
	// sheet's data validation rules survive the reset.
	inputClearRange = InputSheet + "!A2:Z1000"

	// sessionValueRange covers the value column of the four
	// Session_Info fields (workout_date, location, workout_length,
	// comments).
	sessionValueRange = SessionSheet + "!B2:B5"
)

// Client wraps the Sheets service for one spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient authenticates with a service account and binds to the
// configured spreadsheet. Credential resolution order: inline JSON
// (base64 or raw), then key file. Missing or unparseable credentials
// fail with ErrAuthentication before any network call.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	creds, err := loadCredentials(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("%w: create sheets service: %v", ErrAuthentication, err)
	}

	return &Client{svc: svc, spreadsheetID: cfg.SheetID}, nil
}

// loadCredentials builds service-account credentials from the config.
func loadCredentials(ctx context.Context, cfg *config.Config) (*google.Credentials, error) {
	if cfg.CredentialsJSON != "" {
		data := []byte(cfg.CredentialsJSON)
		// Base64 handles all the shell-escaping issues of raw JSON in
		// an environment variable; fall back to raw JSON if it isn't.
		if decoded, err := base64.StdEncoding.DecodeString(cfg.CredentialsJSON); err == nil {
			data = decoded
		}
		creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("%w: parse inline credentials: %v", ErrAuthentication, err)
		}
		return creds, nil
	}

	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("%w: read credentials file: %v", ErrAuthentication, err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("%w: parse credentials file: %v", ErrAuthentication, err)
		}
		return creds, nil
	}

	return nil, fmt.Errorf("%w: no credentials configured", ErrAuthentication)
}

// Extract reads the three input worksheets. The first failure aborts;
// the caller sees a partially-read extract never.
func (c *Client) Extract(ctx context.Context) (*Extract, error) {
	session, err := c.readTable(ctx, SessionSheet)
	if err != nil {
		return nil, err
	}
	exercises, err := c.readTable(ctx, ExercisesSheet)
	if err != nil {
		return nil, err
	}
	input, err := c.readTable(ctx, InputSheet)
	if err != nil {
		return nil, err
	}
	return &Extract{Session: session, Exercises: exercises, Input: input}, nil
}

// readTable fetches a whole worksheet, splitting off the header row.
func (c *Client) readTable(ctx context.Context, name string) (*Table, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, name).Context(ctx).Do()
	if err != nil {
		return nil, mapAPIError("read worksheet "+name, err)
	}

	t := &Table{Name: name}
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%v", v)
		}
		if i == 0 {
			t.Columns = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

// ClearInput empties the Workout_Input data rows, keeping the header.
// Returns the number of rows cleared; a no-op when already empty.
func (c *Client) ClearInput(ctx context.Context) (int, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, InputSheet).Context(ctx).Do()
	if err != nil {
		return 0, mapAPIError("read worksheet "+InputSheet, err)
	}

	rows := len(resp.Values) - 1
	if rows <= 0 {
		return 0, nil
	}

	_, err = c.svc.Spreadsheets.Values.
		Clear(c.spreadsheetID, inputClearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return 0, mapAPIError("clear worksheet "+InputSheet, err)
	}
	return rows, nil
}

// ResetSession blanks the Session_Info values, keeping the field names,
// so the next workout starts from an empty form.
func (c *Client) ResetSession(ctx context.Context) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{""}, {""}, {""}, {""}},
	}
	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, sessionValueRange, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return mapAPIError("reset worksheet "+SessionSheet, err)
	}
	return nil
}
