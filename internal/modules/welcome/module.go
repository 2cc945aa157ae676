// Package welcome sends transactional emails in response to account events.
package welcome

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/events"
	"github.com/as1coder/portfolioBuilder/internal/module"
	"github.com/as1coder/portfolioBuilder/internal/pubsub"
	"github.com/as1coder/portfolioBuilder/internal/registry"
	"github.com/labstack/echo/v4"
)

// WelcomeModule mails new users and users whose portfolio just went live.
type WelcomeModule struct {
	module.BaseModule
	subscriber pubsub.Subscriber
	sender     domain.EmailSender

	// mu guards cancel and closed, and orders wg.Add before Shutdown's Wait.
	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// Dependencies holds the services required by the WelcomeModule. Nil fields
// are resolved from the registry at boot.
type Dependencies struct {
	Subscriber  pubsub.Subscriber
	EmailSender domain.EmailSender
}

// New creates a new WelcomeModule instance.
func New(deps Dependencies) *WelcomeModule {
	return &WelcomeModule{
		subscriber: deps.Subscriber,
		sender:     deps.EmailSender,
	}
}

// Name returns the module name.
func (m *WelcomeModule) Name() string {
	return "welcome"
}

// Boot subscribes to the account events.
func (m *WelcomeModule) Boot(ctx context.Context, _ *echo.Group, reg *registry.Registry) error {
	if m.subscriber == nil {
		m.subscriber = registry.MustGet(reg, registry.EventBusKey)
	}
	if m.sender == nil {
		m.sender = registry.MustGet(reg, registry.EmailSenderKey)
	}

	// Subscriptions outlive the boot context and stop at Shutdown.
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	if err := pubsub.Subscribe(subCtx, m.subscriber, events.IdentitySignedUp, m.onSignedUp); err != nil {
		cancel()
		return fmt.Errorf("subscribe %s: %w", events.IdentitySignedUp.Name(), err)
	}
	if err := pubsub.Subscribe(subCtx, m.subscriber, events.PortfolioOnboarded, m.onOnboarded); err != nil {
		cancel()
		return fmt.Errorf("subscribe %s: %w", events.PortfolioOnboarded.Name(), err)
	}

	slog.InfoContext(ctx, "WelcomeModule subscribed", "events", []string{events.IdentitySignedUp.Name(), events.PortfolioOnboarded.Name()})
	return nil
}

// Shutdown stops the subscriptions and waits for in-flight sends.
func (m *WelcomeModule) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.closed = true
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *WelcomeModule) onSignedUp(ctx context.Context, userID string, e events.SignedUp) error {
	msg, err := welcomeEmail(e)
	if err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}
	return m.send(ctx, userID, msg)
}

func (m *WelcomeModule) onOnboarded(ctx context.Context, userID string, e events.Onboarded) error {
	if e.Email == "" {
		slog.WarnContext(ctx, "Onboarded event without email", "user_id", userID)
		return nil
	}
	msg, err := liveEmail(e)
	if err != nil {
		return fmt.Errorf("render live email: %w", err)
	}
	return m.send(ctx, userID, msg)
}

// track registers an in-flight send. It reports false once Shutdown has begun.
func (m *WelcomeModule) track() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	m.wg.Add(1)
	return true
}

func (m *WelcomeModule) send(ctx context.Context, userID string, msg domain.Email) error {
	if !m.track() {
		slog.WarnContext(ctx, "Email dropped during shutdown", "user_id", userID, "subject", msg.Subject)
		return nil
	}
	defer m.wg.Done()
	if err := m.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send %q to %s: %w", msg.Subject, userID, err)
	}
	slog.InfoContext(ctx, "Email sent", "event", "email_sent", "user_id", userID, "subject", msg.Subject)
	return nil
}
