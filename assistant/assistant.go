// Package assistant composes the catalog, dispatcher, and session into the
// conversation engine behind one surface.
//
// Each surface gets its own Assistant; instances share nothing, so the page
// and the docked panel hold independent conversations. New initializes every
// subsystem from configuration, and functional options replace any of them.
//
//	a, err := assistant.New(ctx, &cfg, assistant.SurfacePage)
//	a.Submit("/explain this loop")
//	for _, r := range a.Render() { ... }
package assistant

import (
	"context"
	"fmt"

	"github.com/tailored-agentic-units/assistant/catalog"
	"github.com/tailored-agentic-units/assistant/core/protocol"
	"github.com/tailored-agentic-units/assistant/dispatch"
	"github.com/tailored-agentic-units/assistant/observability"
	"github.com/tailored-agentic-units/assistant/session"
)

// Option configures an Assistant. Overrides take the place of the
// config-created subsystem.
type Option func(*Assistant)

// WithObserver overrides the observer named in Config.Observer. Repeating
// the option fans events out to every observer given.
func WithObserver(o observability.Observer) Option {
	return func(a *Assistant) { a.observers = append(a.observers, o) }
}

// WithResponder overrides the canonical rule dispatcher.
func WithResponder(r session.Responder) Option {
	return func(a *Assistant) { a.responder = r }
}

// WithCatalog overrides the config-created text catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *Assistant) { a.catalog = c }
}

// Assistant is the conversation engine for a single surface.
type Assistant struct {
	surface   Surface
	catalog   *catalog.Catalog
	responder session.Responder
	session   session.Session
	observer  observability.Observer
	observers []observability.Observer
}

// router is implemented by responders that can name the rule an input
// selects.
type router interface {
	Route(input string) string
}

// New creates an Assistant for surface from configuration. The session opens
// with the surface's welcome text unless cfg.Session.Welcome overrides it.
func New(ctx context.Context, cfg *Config, surface Surface, opts ...Option) (*Assistant, error) {
	if !surface.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSurface, int(surface))
	}

	a := &Assistant{surface: surface}
	for _, opt := range opts {
		opt(a)
	}

	if len(a.observers) > 0 {
		a.observer = observability.Combine(a.observers...)
	} else {
		name := cfg.Observer
		if name == "" {
			name = defaultObserver
		}
		obs, err := observability.GetObserver(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve observer: %w", err)
		}
		a.observer = obs
	}

	if a.catalog == nil {
		cat, err := catalog.New(ctx, &cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		a.catalog = cat
	}

	if a.responder == nil {
		d, err := dispatch.Canonical(a.catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to create dispatcher: %w", err)
		}
		a.responder = d
	}

	welcome, err := a.catalog.Text(surface.WelcomeKey())
	if err != nil && cfg.Session.Welcome == "" {
		return nil, fmt.Errorf("failed to load welcome text: %w", err)
	}

	sesh, err := session.New(&cfg.Session, welcome, a.responder)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	a.session = sesh

	a.observer.OnEvent(ctx, observability.NewEvent(
		EventCreate,
		observability.LevelInfo,
		"assistant.New",
		map[string]any{
			"surface": surface.String(),
			"session": sesh.ID(),
		},
	))

	return a, nil
}

// Submit appends text and its reply to the conversation. Blank input is
// ignored and reported as false.
func (a *Assistant) Submit(text string) bool {
	ctx := context.Background()

	ex, ok := a.session.Submit(text)
	if !ok {
		a.observer.OnEvent(ctx, a.event(EventIgnored, observability.LevelVerbose, "assistant.Submit", map[string]any{
			"input_length": len(text),
		}))
		return false
	}

	a.observer.OnEvent(ctx, a.event(EventSubmit, observability.LevelInfo, "assistant.Submit", map[string]any{
		"input_length": len(text),
		"messages":     a.session.Len(),
	}))

	data := map[string]any{"reply_length": len(ex.Reply.Content)}
	if r, ok := a.responder.(router); ok {
		data["route"] = r.Route(text)
	}
	a.observer.OnEvent(ctx, a.event(EventReply, observability.LevelVerbose, "assistant.Submit", data))

	return true
}

// Reset starts the conversation over with a fresh welcome message.
func (a *Assistant) Reset() {
	a.session.Reset()
	a.observer.OnEvent(context.Background(), a.event(EventReset, observability.LevelInfo, "assistant.Reset", nil))
}

// Messages returns a copy of the conversation in order.
func (a *Assistant) Messages() []protocol.Message {
	return a.session.Messages()
}

// Render returns every message with its content split into display
// segments.
func (a *Assistant) Render() []session.Rendered {
	return session.Render(a.session)
}

// Session returns the underlying conversation session.
func (a *Assistant) Session() session.Session {
	return a.session
}

// Surface returns the surface the assistant was created for.
func (a *Assistant) Surface() Surface {
	return a.surface
}

// ID returns the session identifier.
func (a *Assistant) ID() string {
	return a.session.ID()
}

func (a *Assistant) event(typ observability.EventType, level observability.Level, source string, data map[string]any) observability.Event {
	if data == nil {
		data = make(map[string]any, 2)
	}
	data["surface"] = a.surface.String()
	data["session"] = a.session.ID()
	return observability.NewEvent(typ, level, source, data)
}
