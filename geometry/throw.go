package geometry

import "github.com/pkg/errors"

// A contract breach (constructing a line from coincident points) is a
// programmer error, not a runtime condition, so the core signals it with a
// panic. The root package recovers at the public API boundary and converts
// it to an error for callers who would rather validate than crash.

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
