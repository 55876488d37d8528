package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Base is embedded by every entity. The ID is assigned by the caller, not
// generated: for tenants it is the Facebook Page ID. Deletes are hard deletes,
// so there is no soft-delete column.
type Base struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Map is a schemaless JSON column. The tenant config bag uses it so keys this
// service does not understand still round-trip through storage.
type Map map[string]any

func (m *Map) Scan(value any) error {
	switch t := value.(type) {
	case string:
		return json.Unmarshal([]byte(t), m)
	case []byte:
		return json.Unmarshal(t, m)
	default:
		return fmt.Errorf("cannot scan invalid data type %T", value)
	}
}

func (m Map) Value() (driver.Value, error) {
	return json.Marshal(m)
}
