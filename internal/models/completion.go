package models

import (
	"database/sql"
	"database/sql/driver"
)

// Completion is the tri-state outcome of a daily entry. It is persisted as a
// nullable boolean (NULL / true / false) but handled in code as an explicit
// enumeration so the lifecycle transitions stay exhaustive.
type Completion int8

const (
	CompletionUnset Completion = iota
	CompletionDone
	CompletionMissed
)

func CompletionFromBool(b *bool) Completion {
	switch {
	case b == nil:
		return CompletionUnset
	case *b:
		return CompletionDone
	default:
		return CompletionMissed
	}
}

// Bool returns the nullable-boolean view used in JSON responses.
func (c Completion) Bool() *bool {
	switch c {
	case CompletionDone:
		b := true
		return &b
	case CompletionMissed:
		b := false
		return &b
	default:
		return nil
	}
}

func (c Completion) Value() (driver.Value, error) {
	switch c {
	case CompletionDone:
		return true, nil
	case CompletionMissed:
		return false, nil
	default:
		return nil, nil
	}
}

func (c *Completion) Scan(value interface{}) error {
	var nb sql.NullBool
	if err := nb.Scan(value); err != nil {
		return err
	}
	if !nb.Valid {
		*c = CompletionUnset
	} else if nb.Bool {
		*c = CompletionDone
	} else {
		*c = CompletionMissed
	}
	return nil
}

func (Completion) GormDataType() string {
	return "boolean"
}
