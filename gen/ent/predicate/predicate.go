// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Resume is the predicate function for resume builders.
type Resume func(*sql.Selector)

// StatusEvent is the predicate function for statusevent builders.
type StatusEvent func(*sql.Selector)
