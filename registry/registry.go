package registry

import (
	"fmt"
	"sort"
)

type Example struct {
	Name string
	Doc  string
	Func func()
}

// Examples is a registry of runnable counter scenarios.
var Examples = map[string]Example{}

// Register adds a scenario to the registry. It panics on a duplicate name.
func Register(name string, doc string, example func()) {
	if _, exists := Examples[name]; exists {
		panic(fmt.Sprintf("example %q already registered", name))
	}
	Examples[name] = Example{
		Name: name,
		Doc:  doc,
		Func: example,
	}
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Example, bool) {
	ex, ok := Examples[name]
	return ex, ok
}

// List returns a sorted list of registered scenario names.
func List() []string {
	names := make([]string, 0, len(Examples))
	for k := range Examples {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
