package tmb

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Time is stored in the ledger as unixtime, but rows written by other tools
// may carry text timestamps, so both are accepted when scanning. Derived from
// https://github.com/mattn/go-sqlite3/issues/190#issuecomment-343341834f
type Time time.Time

func (t *Time) Scan(v interface{}) error {
	switch which := v.(type) {
	case int64:
		*t = Time(time.Unix(which, 0))
		return nil
	case int:
		*t = Time(time.Unix(int64(which), 0))
		return nil
	case time.Time:
		*t = Time(which)
		return nil
	case []byte:
		return t.parse(string(which))
	case string:
		return t.parse(which)
	}

	return fmt.Errorf("No appropriate type could be found to decode %v", v)
}

func (t *Time) parse(s string) error {
	vt, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return err
	}
	*t = Time(vt)
	return nil
}

func (t Time) Value() (driver.Value, error) {
	return time.Time(t).Unix(), nil
}

func (t Time) String() string {
	return time.Time(t).UTC().Format("2006-01-02 15:04:05")
}
