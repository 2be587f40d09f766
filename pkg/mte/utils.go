package mte

import (
	"context"
	"errors"
	"reflect"

	"github.com/hashicorp/go-multierror"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if me, ok := err.(*multierror.Error); ok {
		return me.WrappedErrors()
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// unwrapSingle strips one level of aggregation when the aggregate holds
// exactly one cause.
func unwrapSingle(err error) error {
	switch err.(type) {
	case *multierror.Error, interface{ Unwrap() []error }:
		if errs := GetErrors(err); len(errs) == 1 && !IsNil(errs[0]) {
			return errs[0]
		}
	}
	return err
}

// recovered converts a recovered panic value into an error. Cancellation
// panics are re-raised.
func recovered(r any) error {
	err, ok := r.(error)
	if !ok {
		return newPanicError(r)
	}
	if IsCancellationError(err) {
		panic(r)
	}
	return err
}
