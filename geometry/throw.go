package geometry

import "github.com/pkg/errors"

// Threading errors up through the predicate and scan loops would add a lot
// of noise to code that can only fail on internal invariant violations.
// Those paths panic instead, and the public entry points recover to convert
// to an error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
