// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"islgen/cache"
	"islgen/cnf"
	"islgen/general"
	"islgen/gloss"
	"islgen/handlers"
	"islgen/media"
	"islgen/openapi"
	"islgen/tagging"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

func getRequestOrigin(ctx *gin.Context) string {
	currOrigin, ok := ctx.Request.Header["Origin"]
	if ok {
		return currOrigin[0]
	}
	return ""
}

func requestIdentification() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := uuid.New().String()
		ctx.Writer.Header().Set("X-Request-Id", requestID)
		logging.AddLogEvent(ctx, "requestId", requestID)
		logging.AddLogEvent(ctx, "userAgent", ctx.Request.UserAgent())
		ctx.Next()
	}
}

func CORSMiddleware(conf *cnf.Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var allowedOrigin string
		currOrigin := getRequestOrigin(ctx)
		for _, origin := range conf.CorsAllowedOrigins {
			if currOrigin == origin {
				allowedOrigin = origin
				break
			}
		}
		if allowedOrigin != "" {
			ctx.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			ctx.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			ctx.Writer.Header().Set(
				"Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With",
			)
			ctx.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		}

		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}
		ctx.Next()
	}
}

func AuthRequired(conf *cnf.Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if len(conf.AuthHeaderName) > 0 && !collections.SliceContains(conf.AuthTokens, ctx.GetHeader(conf.AuthHeaderName)) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		}
		ctx.Next()
	}
}

type apiServer struct {
	server       *http.Server
	conf         *cnf.Conf
	version      general.VersionInfo
	pipeline     *gloss.Pipeline
	resources    *gloss.Resources
	mediaIndex   *media.Index
	cacheAdapter *cache.Adapter
}

func (api *apiServer) mkServerInfo() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
			"name":           "ISLGEN - Indian Sign Language gloss and sign-sequence server",
			"version":        api.version,
			"knownSigns":     api.mediaIndex.Size(),
			"wordSigns":      api.resources.NumWordSigns(),
			"cachingEnabled": api.cacheAdapter != nil,
		})
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIdentification())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.Use(AuthRequired(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	actions := handlers.NewActions(api.pipeline, api.mediaIndex, api.cacheAdapter)

	engine.GET("/", api.mkServerInfo())

	engine.POST(
		"/process-text", actions.ProcessText)

	engine.GET(
		"/gloss", actions.Gloss)

	engine.GET(
		"/available-signs", actions.AvailableSigns)

	if !api.mediaIndex.IsEmpty() {
		engine.GET(
			"/sign-image/:label", actions.SignImage)

	} else {
		log.Warn().Msg("no sign images available, endpoint /sign-image/:label will be disabled")
	}

	engine.GET(
		"/openapi",
		func(ctx *gin.Context) {
			uniresp.WriteJSONResponse(
				ctx.Writer,
				openapi.NewResponse(api.version.Version, api.conf.PublicURL),
			)
		},
	)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down ISLGEN HTTP API server")
	return api.server.Shutdown(ctx)
}

func runApiServer(conf *cnf.Conf, version general.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	annotator, err := tagging.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load language data")
		return
	}
	resources, err := gloss.NewResources(conf.Gloss)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load gloss resources")
		return
	}
	mediaIndex, err := media.NewIndex(conf.Media)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build sign image index")
		return
	}
	log.Info().
		Int("numLabels", mediaIndex.Size()).
		Strs("labels", mediaIndex.Labels()).
		Msg("sign image index ready")

	var cacheAdapter *cache.Adapter
	if conf.Redis != nil {
		cacheAdapter = cache.NewAdapter(ctx, conf.Redis)
		if err := cacheAdapter.TestConnection(redisConnectionTestTimeout); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
			return
		}
	}

	server := &apiServer{
		conf:         conf,
		version:      version,
		pipeline:     gloss.NewPipeline(annotator, annotator, resources),
		resources:    resources,
		mediaIndex:   mediaIndex,
		cacheAdapter: cacheAdapter,
	}

	services := []service{server}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
