package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"compracerta/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const boardVersionKey = "board:ver"

// BoardCache keeps recently-computed kanban boards in Redis.
// Invalidation bumps a version counter instead of scanning keys, so stale
// entries just expire by TTL. A nil client disables the cache (tests).
type BoardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewBoardCache(rdb *redis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{rdb: rdb, ttl: ttl}
}

func (c *BoardCache) key(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter) string {
	ver, _ := c.rdb.Get(ctx, boardVersionKey).Int64()
	scope := "all"
	if !ator.Admin {
		scope = ator.ID.String()
	}
	return fmt.Sprintf("board:v%d:%s:%s:%s:%s:%s:%s:%s",
		ver, scope, filtro.IDContem, filtro.Status, filtro.Prioridade,
		filtro.SolicitanteID, filtro.CriadaDe, filtro.CriadaAte)
}

func (c *BoardCache) Get(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter) (*dto.BoardResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, c.key(ctx, ator, filtro)).Bytes()
	if err != nil {
		return nil, false
	}
	var resp dto.BoardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *BoardCache) Set(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter, resp *dto.BoardResponse) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(ctx, ator, filtro), data, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Msg("board cache: set failed")
	}
}

// Invalidate makes every cached board unreachable after any request mutation.
func (c *BoardCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, boardVersionKey).Err(); err != nil {
		log.Debug().Err(err).Msg("board cache: invalidate failed")
	}
}
