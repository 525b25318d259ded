// Package where evaluates Lua predicates that select records before matching.
//
// A predicate sees the globals name, number, t9name and t9number. Expressions
// without an explicit return are wrapped as "return (<expr>)". Only the base,
// string, table and math libraries are available.
package where

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single evaluation.
const DefaultTimeout = 2 * time.Second

// ErrTimeout is returned when an evaluation exceeds its timeout.
var ErrTimeout = errors.New("where: sandbox timeout")

// Input holds the values exposed to a predicate.
type Input struct {
	Name     string
	Number   string
	T9Name   string
	T9Number string
}

// Predicate is a compiled Lua expression. It is not safe for concurrent use.
type Predicate struct {
	code    string
	proto   *lua.LFunction
	L       *lua.LState
	timeout time.Duration
}

// Compile parses expr. The returned predicate must be closed.
func Compile(expr string, timeout time.Duration) (*Predicate, error) {
	code := strings.TrimSpace(expr)
	if code == "" {
		code = "return true"
	} else if !containsReturn(code) {
		code = "return (" + code + ")"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	L := newSandboxState()
	fn, err := L.LoadString(code)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("where: %w", err)
	}
	return &Predicate{code: code, proto: fn, L: L, timeout: timeout}, nil
}

// Keep reports whether the record described by in passes the predicate.
// A nil or false result drops the record; any other value keeps it.
func (p *Predicate) Keep(ctx context.Context, in Input) (bool, error) {
	if p == nil {
		return true, nil
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	p.L.SetContext(ctx)
	defer p.L.RemoveContext()

	p.L.SetGlobal("name", lua.LString(in.Name))
	p.L.SetGlobal("number", lua.LString(in.Number))
	p.L.SetGlobal("t9name", lua.LString(in.T9Name))
	p.L.SetGlobal("t9number", lua.LString(in.T9Number))

	p.L.Push(p.proto)
	if err := p.L.PCall(0, 1, nil); err != nil {
		if isTimeout(ctx, err) {
			return false, ErrTimeout
		}
		return false, fmt.Errorf("where: %w", err)
	}
	ret := p.L.Get(-1)
	p.L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state.
func (p *Predicate) Close() {
	if p != nil && p.L != nil {
		p.L.Close()
		p.L = nil
	}
}

// String returns the compiled source.
func (p *Predicate) String() string { return p.code }

func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	// base opens loaders that can reach the filesystem
	for _, name := range []string{"dofile", "loadfile", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// containsReturn reports whether code contains the token "return".
func containsReturn(code string) bool {
	return strings.Contains(code, "return")
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}
