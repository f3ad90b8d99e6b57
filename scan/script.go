package scan

import (
	"fmt"
	"strings"
	"sync"

	"github.com/robertkrimen/otto"
)

// Script compiles a JavaScript predicate into a codepoint class for use
// with TakeWhile. src is either an arrow function, e.g.
//
//	c => c === "_" || c === "-"
//
// or ES5 source defining a function named f. The predicate receives the
// codepoint as a one-character string. A script that throws, or returns a
// value that is not convertible to a boolean, classifies the codepoint as
// not matching.
//
// The returned predicate is safe for concurrent use; calls are serialised.
func Script(src string) (func(rune) bool, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("empty script")
	}
	if i := strings.Index(src, "=>"); i >= 0 && !strings.HasPrefix(src, "function") {
		// otto only runs ES5, so rewrite the arrow as a normal function
		arg := strings.Trim(strings.TrimSpace(src[:i]), "()")
		body := strings.TrimSpace(src[i+2:])
		if strings.HasPrefix(body, "{") {
			src = "function f(" + arg + ")" + body + ";"
		} else {
			src = "function f(" + arg + "){ return " + body + "};"
		}
		log(src)
	}

	vm := otto.New()
	if _, err := vm.Run(src); err != nil { // define function
		return nil, fmt.Errorf("defining script %q: %w", src, err)
	}
	f, err := vm.Get("f")
	if err != nil {
		return nil, err
	}
	if !f.IsFunction() {
		return nil, fmt.Errorf("script %q does not define a function f", src)
	}

	var mu sync.Mutex
	return func(r rune) bool {
		mu.Lock()
		defer mu.Unlock()
		value, err := f.Call(otto.UndefinedValue(), string(r))
		if err != nil {
			log("Couldn't run the function 'f' on " + string(r))
			return false
		}
		ok, err := value.ToBoolean()
		if err != nil {
			log("Couldn't export the result")
			return false
		}
		return ok
	}, nil
}
