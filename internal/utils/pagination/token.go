package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor is the position of the last row of a page of shifts, ordered by
// (opened_at DESC, shift_id DESC).
type Cursor struct {
	OpenedAt time.Time
	ShiftID  string
}

// EncodeToken creates a base64 encoded token from the opening time and ID of the last shift on a page.
func EncodeToken(openedAt time.Time, shiftID string) string {
	tokenStr := fmt.Sprintf("%s|%s", openedAt.UTC().Format(timeFormat), shiftID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	openedAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (opened_at parse): %w", err)
	}

	return Cursor{OpenedAt: openedAt, ShiftID: parts[1]}, nil
}
