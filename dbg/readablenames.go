// Package dbg turns pointers into readable names for debug output.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Names are generated lazily and never forgotten, so memory only grows while
// something is asking for names (debug logging, debug String methods).
//
// Since names are handed out in order of demand, generation is seeded
// nondeterministically as a reminder that the same name does not refer to the
// same run from one execution to the next.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	petname.NonDeterministicMode()
}

// Name returns the name for obj, which must be a pointer (or nil). Safe for
// concurrent use, since meshes may be generated on several goroutines.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
