package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/database"
	"github.com/as1coder/portfolioBuilder/internal/database/firestore"
	"github.com/as1coder/portfolioBuilder/internal/database/redisstore"
	"github.com/as1coder/portfolioBuilder/internal/domain"
)

// Backend is the store and identity provider selected by STORE_DRIVER.
type Backend struct {
	Store    domain.Store
	Identity domain.IdentityProvider
	closers  []func() error
}

// Close releases every connection the backend opened.
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	return errors.Join(errs...)
}

// OpenBackend connects to the configured driver.
func OpenBackend(ctx context.Context, cfg config.Provider) (*Backend, error) {
	driver := cfg.GetStoreDriver()
	slog.InfoContext(ctx, "Opening store", "event", "store_open", "driver", driver)

	switch driver {
	case config.DriverSurreal:
		return openSurreal(ctx, cfg)
	case config.DriverRedis:
		return openRedis(ctx, cfg)
	case config.DriverFirestore:
		return openFirestore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// identityConnections bounds concurrent SurrealDB identity calls.
const identityConnections = 4

// openSurreal keeps store and identity traffic on separate connections.
// Record access sign-in re-authenticates the connection it runs on, so
// identity calls draw from their own pool.
func openSurreal(ctx context.Context, cfg config.Provider) (*Backend, error) {
	storeConn := database.NewConnection(cfg)
	if err := storeConn.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}
	if err := database.ApplySchema(ctx, storeConn); err != nil {
		_ = storeConn.Close(ctx)
		return nil, err
	}
	storeConn.StartMonitoring()

	identityConns := make([]database.DBConnection, 0, identityConnections)
	for range identityConnections {
		conn := database.NewConnection(cfg)
		if err := conn.Connect(ctx); err != nil {
			for _, c := range identityConns {
				_ = c.Close(ctx)
			}
			_ = storeConn.Close(ctx)
			return nil, fmt.Errorf("connect identity: %w", err)
		}
		identityConns = append(identityConns, conn)
	}

	store := database.NewStore(storeConn)
	identity := database.NewIdentityStore(identityConns[0], identityConns[1:]...)
	return &Backend{
		Store:    store,
		Identity: identity,
		closers:  []func() error{store.Close, identity.Close},
	}, nil
}

func openRedis(ctx context.Context, cfg config.Provider) (*Backend, error) {
	client, err := redisstore.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store := redisstore.NewStore(client)
	return &Backend{
		Store:    store,
		Identity: redisstore.NewIdentityStore(client),
		closers:  []func() error{store.Close},
	}, nil
}

func openFirestore(ctx context.Context, cfg config.Provider) (*Backend, error) {
	fbApp, err := firestore.NewApp(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store, err := firestore.Open(ctx, fbApp)
	if err != nil {
		return nil, err
	}
	identity, err := firestore.NewIdentityProvider(ctx, fbApp, cfg.GetFirebaseAPIKey())
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &Backend{
		Store:    store,
		Identity: identity,
		closers:  []func() error{store.Close},
	}, nil
}
