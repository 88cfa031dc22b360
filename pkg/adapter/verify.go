package adapter

import (
	"reflect"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

// requiredMethod describes one operation of the capability contract:
// its name and the argument/result counts an implementation must expose.
type requiredMethod struct {
	name    string
	numIn   int // excluding the receiver
	numOut  int
}

// requiredMethods is the structural contract checked by VerifyConformance.
var requiredMethods = []requiredMethod{
	{name: "ConvertTool", numIn: 1, numOut: 2},
	{name: "ConvertTools", numIn: 1, numOut: 2},
	{name: "ExecuteTool", numIn: 4, numOut: 2},
}

// VerifyConformance structurally checks that candidate exposes the three
// adapter operations as callables with acceptable arity. It returns nil
// iff the candidate conforms; unrelated extra members are ignored.
//
// The check only reads type metadata, so it is idempotent and safe to call
// concurrently. It complements Go's compile-time interface check for
// backends that are assembled dynamically (embedding, generated code),
// producing a precise diagnostic instead of a distant type error.
func VerifyConformance(candidate any) error {
	if candidate == nil {
		return forgeerrors.New("adapter candidate is nil")
	}

	v := reflect.ValueOf(candidate)
	for _, want := range requiredMethods {
		m := v.MethodByName(want.name)
		if !m.IsValid() {
			return forgeerrors.Newf("adapter %T is missing operation %s", candidate, want.name)
		}

		mt := m.Type()
		if mt.NumIn() != want.numIn {
			return forgeerrors.Newf("adapter %T operation %s takes %d argument(s), want %d",
				candidate, want.name, mt.NumIn(), want.numIn)
		}
		if mt.NumOut() != want.numOut {
			return forgeerrors.Newf("adapter %T operation %s returns %d value(s), want %d",
				candidate, want.name, mt.NumOut(), want.numOut)
		}
	}

	return nil
}

// Conforms reports whether candidate satisfies the capability contract.
func Conforms(candidate any) bool {
	return VerifyConformance(candidate) == nil
}
