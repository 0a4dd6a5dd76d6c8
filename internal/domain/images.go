package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageList stores listing image references as a JSON array in a single text
// column. SQLite has no native array type and the images are only ever read
// back as a whole.
type ImageList []string

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("domain: cannot scan %T into ImageList", src)
	}
}
