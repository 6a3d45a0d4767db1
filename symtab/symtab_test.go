package symtab

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.symtab")
	defer teardown()
	//
	table := NewTable()
	if table == nil || table.Size() != 0 {
		t.Error("expected an empty symbol table")
	}
}

func TestDefineDistinctHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.symtab")
	defer teardown()
	//
	scope := NewScope(GlobalScopeName, nil, nil)
	h1, _ := scope.Define("a")
	h2, _ := scope.Define("b")
	if h1 == NoSymbol || h2 == NoSymbol {
		t.Fatalf("expected valid handles, got %s and %s", h1, h2)
	}
	if h1 == h2 {
		t.Errorf("2 symbols with equal handle")
	}
	if scope.Table().Name(h2) != "b" {
		t.Errorf("expected name of %s to be 'b', is '%s'", h2, scope.Table().Name(h2))
	}
	if h, _ := scope.Define(""); h != NoSymbol {
		t.Errorf("empty names must not be defined")
	}
}

func TestDefineShadows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.symtab")
	defer teardown()
	//
	scope := NewScope(GlobalScopeName, nil, nil)
	h1, _ := scope.Define("x")
	h2, old := scope.Define("x")
	if old != h1 {
		t.Errorf("expected previous binding %s, got %s", h1, old)
	}
	if h, _ := scope.Resolve("x"); h != h2 {
		t.Errorf("symbol should have been rebound")
	}
	if scope.Table().Entry(h1) == nil || scope.Table().Size() != 2 {
		t.Errorf("shadowed entries must stay valid")
	}
}

func TestTableEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.symtab")
	defer teardown()
	//
	scst := NewScopeTree(nil)
	scst.Current().Define("x")
	scst.PushNewScope("f")
	scst.Current().Define("x")
	scst.PopScope()
	scst.Current().Define("y")
	var names []string
	scst.Table().Each(func(h Handle, e *Entry) {
		if e.Handle() != h {
			t.Errorf("entry %v iterated with handle %s", e, h)
		}
		names = append(names, e.Scope()+"."+e.Name())
	})
	expected := "globals.x f.x globals.y"
	if s := strings.Join(names, " "); s != expected {
		t.Errorf("expected entries %q in order of definition, got %q", expected, s)
	}
}

func TestEntryOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.symtab")
	defer teardown()
	//
	table := NewTable()
	if table.Entry(NoSymbol) != nil || table.Entry(Handle(7)) != nil {
		t.Errorf("expected nil entries for unknown handles")
	}
}

func TestScopeUpsearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.symtab")
	defer teardown()
	//
	scopep := NewScope("parent", nil, nil)
	scope := NewScope("current", scopep, nil)
	h, _ := scopep.Define("new-sym")
	if found, sc := scope.Resolve("new-sym"); found != h || sc != scopep {
		t.Errorf("expected to find symbol in parent scope")
	}
	if scope.Table() != scopep.Table() {
		t.Errorf("scopes of a tree must share their table")
	}
}

func TestScopeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.symtab")
	defer teardown()
	//
	scst := NewScopeTree(nil)
	g, _ := scst.Current().Define("x")
	scst.PushNewScope("f")
	l, _ := scst.Current().Define("x")
	if h, _ := scst.Current().Resolve("x"); h != l {
		t.Errorf("expected local x to shadow global x")
	}
	if e := scst.Table().Entry(l); e == nil || e.Scope() != "f" {
		t.Errorf("expected local x to be defined in scope f, is %v", e)
	}
	scst.PopScope()
	if h, _ := scst.Current().Resolve("x"); h != g {
		t.Errorf("expected global x after popping scope")
	}
	if scst.Current() != scst.Globals() {
		t.Errorf("expected global scope to be TOS")
	}
}
