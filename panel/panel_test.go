package panel_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tailored-agentic-units/assistant/observability"
	"github.com/tailored-agentic-units/assistant/panel"
)

type recordingHost struct {
	mu       sync.Mutex
	calls    []string
	attached bool
}

func (h *recordingHost) EnsureAttached() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, "attach")
	h.attached = true
}

func (h *recordingHost) SlideIn() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, "in")
}

func (h *recordingHost) SlideOut() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, "out")
}

func (h *recordingHost) Calls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.calls...)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []observability.Event
}

func (o *recordingObserver) OnEvent(_ context.Context, e observability.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func TestToggle_Pure(t *testing.T) {
	if got := panel.Toggle(panel.Hidden); got != panel.Visible {
		t.Errorf("Toggle(Hidden) = %v, want Visible", got)
	}
	if got := panel.Toggle(panel.Visible); got != panel.Hidden {
		t.Errorf("Toggle(Visible) = %v, want Hidden", got)
	}
	if got := panel.Toggle(panel.Toggle(panel.Hidden)); got != panel.Hidden {
		t.Errorf("Toggle(Toggle(Hidden)) = %v, want Hidden", got)
	}
}

func TestVisibility_String(t *testing.T) {
	tests := []struct {
		v    panel.Visibility
		want string
	}{
		{panel.Hidden, "hidden"},
		{panel.Visible, "visible"},
		{panel.Visibility(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Visibility(%d).String() = %q, want %q", int(tt.v), got, tt.want)
		}
	}
}

func TestNew_StartsHidden(t *testing.T) {
	host := &recordingHost{}
	p := panel.New(host)

	if p.State() != panel.Hidden {
		t.Errorf("got state %v, want Hidden", p.State())
	}
	if len(host.Calls()) != 0 {
		t.Errorf("host was touched before first toggle: %v", host.Calls())
	}
}

func TestPanel_Toggle_HostCalls(t *testing.T) {
	host := &recordingHost{}
	p := panel.New(host)

	if got := p.Toggle(); got != panel.Visible {
		t.Fatalf("first toggle = %v, want Visible", got)
	}
	if got := p.Toggle(); got != panel.Hidden {
		t.Fatalf("second toggle = %v, want Hidden", got)
	}
	p.Toggle()

	want := []string{"attach", "in", "out", "attach", "in"}
	if diff := cmp.Diff(want, host.Calls()); diff != "" {
		t.Errorf("host calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPanel_Hide_NeverDetaches(t *testing.T) {
	host := &recordingHost{}
	p := panel.New(host)

	p.Show()
	p.Hide()

	if !host.attached {
		t.Error("panel should remain attached after hide")
	}
	calls := host.Calls()
	if calls[len(calls)-1] != "out" {
		t.Errorf("hide should only slide out, got calls %v", calls)
	}
}

func TestPanel_ShowHide_Idempotent(t *testing.T) {
	host := &recordingHost{}
	p := panel.New(host)

	p.Hide()
	if len(host.Calls()) != 0 {
		t.Errorf("hide while hidden touched host: %v", host.Calls())
	}

	p.Show()
	p.Show()
	if got := p.State(); got != panel.Visible {
		t.Errorf("got state %v, want Visible", got)
	}

	want := []string{"attach", "in"}
	if diff := cmp.Diff(want, host.Calls()); diff != "" {
		t.Errorf("host calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPanel_Toggle_EmitsEvents(t *testing.T) {
	obs := &recordingObserver{}
	p := panel.New(&recordingHost{}, panel.WithObserver(obs))

	p.Toggle()
	p.Toggle()

	if len(obs.events) != 2 {
		t.Fatalf("got %d events, want 2", len(obs.events))
	}

	first := obs.events[0]
	if first.Type != panel.EventToggle {
		t.Errorf("got event type %q, want %q", first.Type, panel.EventToggle)
	}
	if first.Data["from"] != "hidden" || first.Data["to"] != "visible" {
		t.Errorf("got data %v, want hidden -> visible", first.Data)
	}
	if obs.events[1].Data["to"] != "hidden" {
		t.Errorf("second event should report hidden, got %v", obs.events[1].Data)
	}
}

func TestPanel_Concurrent_Toggle(t *testing.T) {
	host := &recordingHost{}
	p := panel.New(host)
	const n = 100

	var wg sync.WaitGroup
	wg.Add(2 * n)
	for range n {
		go func() {
			defer wg.Done()
			p.Toggle()
		}()
		go func() {
			defer wg.Done()
			_ = p.State()
		}()
	}
	wg.Wait()

	if got := p.State(); got != panel.Hidden {
		t.Errorf("even number of toggles left state %v, want Hidden", got)
	}

	var ins, outs int
	for _, c := range host.Calls() {
		switch c {
		case "in":
			ins++
		case "out":
			outs++
		}
	}
	if ins != n/2 || outs != n/2 {
		t.Errorf("got %d slide-ins and %d slide-outs, want %d each", ins, outs, n/2)
	}
}
