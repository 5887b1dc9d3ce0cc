package assert

import (
	"sync/atomic"

	"github.com/oomph-ac/playersim/oerror"
)

var (
	strict   atomic.Bool
	reporter atomic.Pointer[func(err error)]
)

// SetStrict sets whether failed assertions should panic. Strict mode is meant for development builds and
// tests; production builds report the failure and carry on.
func SetStrict(v bool) {
	strict.Store(v)
}

// Strict returns true if failed assertions panic.
func Strict() bool {
	return strict.Load()
}

// SetReporter sets the function failed assertions are reported to when not in strict mode.
func SetReporter(f func(err error)) {
	if f == nil {
		reporter.Store(nil)
		return
	}
	reporter.Store(&f)
}

// IsTrue asserts that ok is true. If it isn't, it panics in strict mode, or reports the error and returns
// false so that the caller can skip the operation.
func IsTrue(ok bool, message string, args ...any) bool {
	if ok {
		return true
	}
	err := oerror.New(message, args...)
	if strict.Load() {
		panic(err)
	}
	if f := reporter.Load(); f != nil {
		(*f)(err)
	}
	return false
}

// NoError asserts that err is nil, following the same rules as IsTrue.
func NoError(err error, message string, args ...any) bool {
	if err == nil {
		return true
	}
	return IsTrue(false, message+": %w", append(args, err)...)
}
