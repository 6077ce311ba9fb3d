package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor marks a position in a list ordered by (created_at, id).
type Cursor struct {
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

func (c Cursor) Time() time.Time {
	return time.UnixMilli(c.CreatedAt).UTC()
}

func New(t time.Time, id string) Cursor {
	return Cursor{CreatedAt: t.UnixMilli(), ID: id}
}

func Encode(t time.Time, id string) string {
	b, _ := json.Marshal(New(t, id))
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode parses an opaque cursor. An empty string yields (nil, nil).
func Decode(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if c.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidCursor)
	}

	return &c, nil
}
