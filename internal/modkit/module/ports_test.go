package module

import (
	"strings"
	"testing"

	phttp "codecheck/internal/platform/net/http"
)

type statePort interface{ Load() []string }

type memState struct{ codes []string }

func (m memState) Load() []string { return m.codes }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() PortSet           { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	type Ports struct {
		TTL   int
		State statePort
	}
	type hidden struct {
		state statePort
	}
	st := memState{codes: []string{"A"}}

	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil", nil, false},
		{"direct", statePort(st), true},
		{"struct field", Ports{TTL: 1, State: st}, true},
		{"pointer to struct", &Ports{State: st}, true},
		{"nil pointer", (*Ports)(nil), false},
		{"unexported field", hidden{state: st}, false},
		{"unrelated", 42, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[statePort](fakeModule{name: c.name, ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if ok && got.Load()[0] != "A" {
				t.Fatalf("got wrong port %v", got)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	m := fakeModule{name: "daily", ports: struct{ State statePort }{memState{codes: []string{"A"}}}}
	if got := MustPortsOf[statePort](m); len(got.Load()) != 1 {
		t.Fatalf("MustPortsOf = %v", got)
	}

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "module daily") || !strings.Contains(msg, "statePort") {
			t.Fatalf("panic = %q", msg)
		}
	}()
	MustPortsOf[statePort](fakeModule{name: "daily"})
}
