package mte

import "fmt"

// Optional is implemented by containers that either hold a T or do not.
type Optional[T any] interface {
	fmt.Stringer
	// AsMaybe keeps the value and drops anything else
	AsMaybe() Maybe[T]
	// AsTry keeps the value or reports why there is none
	AsTry() Try[T]
}

var (
	_ Optional[int] = Maybe[int]{}
	_ Optional[int] = Try[int]{}
)
