// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of ISLGEN.
//
//  ISLGEN is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ISLGEN is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ISLGEN.  If not, see <https://www.gnu.org/licenses/>.

// Package cache provides an optional Redis-backed cache for
// processed-text responses. The gloss pipeline itself is a pure
// function; caching is strictly a gateway concern keyed by the
// normalized input text.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultResultExpiration = 10 * time.Minute

	keyPrefix = "islgenResult:"
)

type Conf struct {
	Host          string `json:"host"`
	Port          int    `json:"port"`
	DB            int    `json:"db"`
	Password      string `json:"password"`
	ResultTTLSecs int    `json:"resultTtlSecs"`
}

// Adapter wraps the Redis connection. A nil *Adapter is a valid
// no-op cache, so callers need no conditionals around an unset
// redis configuration.
type Adapter struct {
	ctx context.Context
	c   *redis.Client
	ttl time.Duration
}

func (a *Adapter) TestConnection(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(a.ctx, timeout)
	defer cancel()
	if err := a.c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

func mkKey(text string) string {
	hashKey := sha1.Sum([]byte(text))
	return keyPrefix + hex.EncodeToString(hashKey[:])
}

// Get loads a cached response into dst. The first return value
// reports a cache hit; cache errors are logged and reported as
// misses so a broken cache degrades rather than fails requests.
func (a *Adapter) Get(text string, dst any) bool {
	if a == nil {
		return false
	}
	cmd := a.c.Get(a.ctx, mkKey(text))
	if cmd.Err() == redis.Nil {
		return false

	} else if cmd.Err() != nil {
		log.Err(cmd.Err()).Msg("failed to read cached result")
		return false
	}
	if err := json.Unmarshal([]byte(cmd.Val()), dst); err != nil {
		log.Err(err).Msg("failed to deserialize cached result")
		return false
	}
	return true
}

// Set stores a response under the normalized text key.
func (a *Adapter) Set(text string, value any) {
	if a == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Err(err).Msg("failed to serialize result for caching")
		return
	}
	if err := a.c.Set(a.ctx, mkKey(text), string(data), a.ttl).Err(); err != nil {
		log.Err(err).Msg("failed to store cached result")
	}
}

func NewAdapter(ctx context.Context, conf *Conf) *Adapter {
	ttl := DefaultResultExpiration
	if conf.ResultTTLSecs > 0 {
		ttl = time.Duration(conf.ResultTTLSecs) * time.Second

	} else {
		log.Warn().
			Dur("ttl", ttl).
			Msg("Redis result TTL not specified, using default")
	}
	return &Adapter{
		ctx: ctx,
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ttl: ttl,
	}
}
