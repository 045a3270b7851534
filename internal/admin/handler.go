// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/angelamos/copilothub/internal/core"
)

// Counter reports how many records a collection holds. Every store
// collection satisfies it.
type Counter interface {
	Name() string
	Count(ctx context.Context) (int, error)
}

type Handler struct {
	collections []Counter
	redisStats  func() *redis.PoolStats
	redisPing   func(ctx context.Context) error
}

type HandlerConfig struct {
	Collections []Counter
	RedisStats  func() *redis.PoolStats
	RedisPing   func(ctx context.Context) error
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		collections: cfg.Collections,
		redisStats:  cfg.RedisStats,
		redisPing:   cfg.RedisPing,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/stats", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.GetSystemStats)
		r.Get("/collections", h.GetCollectionStats)
		r.Get("/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	redisHealthy := true
	if h.redisPing != nil {
		if err := h.redisPing(ctx); err != nil {
			redisHealthy = false
		}
	}

	collections, err := h.collectionStats(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	response := SystemStatsResponse{
		Collections: collections,
		Redis: RedisStatus{
			Healthy: redisHealthy,
			Stats:   h.getRedisStats(),
		},
		Runtime: currentRuntimeStats(),
	}

	core.OK(w, response)
}

func (h *Handler) GetCollectionStats(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collectionStats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, collections)
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, currentRuntimeStats())
}

func (h *Handler) collectionStats(ctx context.Context) ([]CollectionStats, error) {
	stats := make([]CollectionStats, 0, len(h.collections))
	for _, c := range h.collections {
		count, err := c.Count(ctx)
		if err != nil {
			return nil, err
		}
		stats = append(stats, CollectionStats{
			Name:  c.Name(),
			Count: count,
		})
	}

	return stats, nil
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		StaleConns: stats.StaleConns,
	}
}

func currentRuntimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

type SystemStatsResponse struct {
	Collections []CollectionStats `json:"collections"`
	Redis       RedisStatus       `json:"redis"`
	Runtime     RuntimeStats      `json:"runtime"`
}

type CollectionStats struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RedisStatus struct {
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
