package auth

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"jobportal-auth/internal/config"
	"jobportal-auth/internal/cookies"
	"jobportal-auth/internal/metrics"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/storage"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

// FlowSessionManager stores OAuth state, nonce and PKCE verifier between the redirect to the
// provider and its callback.
type FlowSessionManager struct {
	*scs.SessionManager
	redisClient *redis.Client

	stopCleanup chan struct{}
	cleanupDone chan struct{}
	closeOnce   sync.Once
}

const flowSessionCleanupInterval = 5 * time.Minute

// NewFlowSessionManager builds the flow session store selected by cfg.Sessions.Store. db is
// only used by the postgres store.
func NewFlowSessionManager(logger *slog.Logger, cfg *config.Config, policy *cookies.Policy, db storage.StorageProvider) (*FlowSessionManager, error) {
	sessionManager := scs.New()
	manager := &FlowSessionManager{SessionManager: sessionManager}

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		client, err := newRedisClient(logger, cfg.Redis)
		if err != nil {
			return nil, err
		}

		collector := redisprometheus.NewCollector(metrics.Namespace, "flow_sessions", client)
		if err := prometheus.Register(collector); err != nil {
			logger.Debug("failed to register redis flow session collector: already registered", "error", err)
		}

		manager.redisClient = client
		sessionManager.Store = goredisstore.New(client)
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres session store requires a database connection")
		}
		sqlDB := db.DB()
		// Expired rows are reaped by startCleanup, which Close stops.
		sessionManager.Store = postgresstore.NewWithCleanupInterval(sqlDB, 0)
		manager.startCleanup(logger, sqlDB, flowSessionCleanupInterval)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	flowCookie := policy.Flow()
	sessionManager.Lifetime = cfg.Sessions.FlowLifetime
	sessionManager.Cookie.Name = flowCookie.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = flowCookie.Secure
	sessionManager.Cookie.Path = "/"
	sessionManager.Cookie.Persist = false

	logger.Info("flow session store initialised", "store", cfg.Sessions.Store, "cookie", flowCookie.Name)

	return manager, nil
}

func newRedisClient(logger *slog.Logger, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis configuration is required to use the redis session store")
	}

	var client *redis.Client
	if cfg.Sentinel != nil {
		logger.Info("connecting to redis via sentinel",
			"master", cfg.Sentinel.MasterName,
			"sentinels", cfg.Sentinel.SentinelAddresses)

		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.Sentinel.MasterName,
			SentinelAddrs:    cfg.Sentinel.SentinelAddresses,
			SentinelUsername: cfg.Sentinel.SentinelUsername,
			SentinelPassword: cfg.Sentinel.SentinelPassword,
			Username:         cfg.Username,
			Password:         cfg.Password,
			DB:               cfg.SessionIndex,
			MinIdleConns:     2,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Address,
			Username:     cfg.Username,
			Password:     cfg.Password,
			DB:           cfg.SessionIndex,
			MinIdleConns: 2,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}

// Ping checks the backing redis connection, if any.
func (s *FlowSessionManager) Ping(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}
	return s.redisClient.Ping(ctx).Err()
}

func (s *FlowSessionManager) startCleanup(logger *slog.Logger, db *sql.DB, interval time.Duration) {
	s.stopCleanup = make(chan struct{})
	s.cleanupDone = make(chan struct{})

	go func() {
		defer close(s.cleanupDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := db.Exec("DELETE FROM sessions WHERE expiry < current_timestamp"); err != nil {
					logger.Warn("failed to delete expired flow sessions", "error", err)
				}
			case <-s.stopCleanup:
				return
			}
		}
	}()
}

// Close stops the postgres cleanup loop and closes the redis client, whichever
// the store uses. It is safe to call more than once.
func (s *FlowSessionManager) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.stopCleanup != nil {
			close(s.stopCleanup)
			<-s.cleanupDone
		}
		if s.redisClient != nil {
			err = s.redisClient.Close()
		}
	})
	return err
}

func (s *FlowSessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

func (s *FlowSessionManager) SetOauthState(ctx *middlewares.AppContext, state string) {
	s.Put(ctx, string(SessionKeyOauthState), state)
}

func (s *FlowSessionManager) GetOauthState(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyOauthState))
}

func (s *FlowSessionManager) ClearOauthState(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyOauthState))
}

func (s *FlowSessionManager) SetOauthNonce(ctx *middlewares.AppContext, nonce string) {
	s.Put(ctx, string(SessionKeyOauthNonce), nonce)
}

func (s *FlowSessionManager) GetOauthNonce(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyOauthNonce))
}

func (s *FlowSessionManager) ClearOauthNonce(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyOauthNonce))
}

func (s *FlowSessionManager) SetOauthCodeVerifier(ctx *middlewares.AppContext, verifier string) {
	s.Put(ctx, string(SessionKeyOauthCodeVerifier), verifier)
}

func (s *FlowSessionManager) GetOauthCodeVerifier(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyOauthCodeVerifier))
}

func (s *FlowSessionManager) ClearOauthCodeVerifier(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyOauthCodeVerifier))
}

func (s *FlowSessionManager) Destroy(ctx *middlewares.AppContext) error {
	return s.SessionManager.Destroy(ctx.Request.Context())
}
