// Package redisstore implements the profile and project store and an identity
// provider on Redis.
//
// Layout:
//
//	users:{id}            hash, one JSON-encoded value per profile field
//	projects:{id}         hash, one JSON-encoded value per project field
//	users:{id}:projects   list of the owner's project ids in insertion order
//	accounts:{id}         hash with email, name and bcrypt password hash
//	accounts:email:{addr} account id for a lower-cased email address
//	sessions:{token}      account id, expires with the session
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	userKeyPrefix    = "users:"
	projectKeyPrefix = "projects:"
	accountKeyPrefix = "accounts:"
	emailKeyPrefix   = "accounts:email:"
	sessionKeyPrefix = "sessions:"

	// maxTxRetries bounds optimistic transaction retries on WATCH conflicts.
	maxTxRetries = 3
)

func userKey(id string) string         { return userKeyPrefix + id }
func userProjectsKey(id string) string { return userKeyPrefix + id + ":projects" }
func projectKey(id string) string      { return projectKeyPrefix + id }
func accountKey(id string) string      { return accountKeyPrefix + id }
func emailKey(email string) string     { return emailKeyPrefix + email }
func sessionKey(token string) string   { return sessionKeyPrefix + token }

// Connect opens a client from configuration and checks that the server
// answers.
func Connect(ctx context.Context, cfg config.Provider) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.GetRedisPassword(),
		DB:       cfg.GetRedisDB(),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetRedisAddr(), err)
	}
	slog.InfoContext(ctx, "Connected to Redis", "event", "redis_connect_success", "addr", cfg.GetRedisAddr())
	return client, nil
}

// Store implements domain.Store.
type Store struct {
	client *redis.Client
}

var _ domain.Store = (*Store)(nil)

// NewStore wraps an open client. Close closes the client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping checks that the server answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// encodeFields JSON-encodes every value so that strings, lists, booleans and
// times survive the round trip through a hash.
func encodeFields(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode field %s: %w", k, err)
		}
		out[k] = string(b)
	}
	return out, nil
}

// decodeHash rebuilds a JSON object from a hash written by encodeFields and
// decodes it into dst.
func decodeHash(h map[string]string, dst any) error {
	obj := make(map[string]json.RawMessage, len(h))
	for k, v := range h {
		if !json.Valid([]byte(v)) {
			// tolerate plain values written by hand
			b, _ := json.Marshal(v)
			obj[k] = b
			continue
		}
		obj[k] = json.RawMessage(v)
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// decodeString decodes a single JSON string value, falling back to the raw
// text.
func decodeString(raw string) string {
	var v string
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// watch runs fn in an optimistic transaction on keys, retrying on conflict.
func (s *Store) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = s.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}
