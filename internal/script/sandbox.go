package script

import (
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// newState creates a Lua state with only the libraries a test script
// needs. io, os, debug and package are never opened.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// installPrint replaces print so script output goes to w.
func installPrint(L *lua.LState, w io.Writer) {
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		io.WriteString(w, strings.Join(parts, "\t")+"\n")
		return 0
	}))
}
