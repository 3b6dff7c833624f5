package storage

import "fmt"

// Open builds the slot described by a storage driver and location.
// The file driver treats path as the slot file itself; the sqlite driver
// treats it as the database file and name as the row key.
func Open(driver, path, name string) (Slot, error) {
	switch driver {
	case "file":
		return NewFileSlot(path), nil
	case "sqlite":
		return OpenSQLiteSlot(path, name)
	case "memory":
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
