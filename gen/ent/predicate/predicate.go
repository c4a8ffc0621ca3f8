// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CategoryScore is the predicate function for categoryscore builders.
type CategoryScore func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// KeyFinding is the predicate function for keyfinding builders.
type KeyFinding func(*sql.Selector)

// Keyword is the predicate function for keyword builders.
type Keyword func(*sql.Selector)
