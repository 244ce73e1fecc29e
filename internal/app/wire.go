package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bipbipboopboop/ielts-progressor/internal/adapter/anthropic"
	"github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres"
	accountrepo "github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres/account"
	attemptrepo "github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres/attempt"
	identityrepo "github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres/identity"
	"github.com/bipbipboopboop/ielts-progressor/internal/adapter/provider/freedict"
	"github.com/bipbipboopboop/ielts-progressor/internal/adapter/provider/stub"
	"github.com/bipbipboopboop/ielts-progressor/internal/adapter/watsonx"
	authpkg "github.com/bipbipboopboop/ielts-progressor/internal/auth"
	"github.com/bipbipboopboop/ielts-progressor/internal/config"
	"github.com/bipbipboopboop/ielts-progressor/internal/generation"
	accountsvc "github.com/bipbipboopboop/ielts-progressor/internal/service/account"
	authsvc "github.com/bipbipboopboop/ielts-progressor/internal/service/auth"
	"github.com/bipbipboopboop/ielts-progressor/internal/service/practice"
	"github.com/bipbipboopboop/ielts-progressor/internal/service/scoring"
	"github.com/bipbipboopboop/ielts-progressor/internal/transport/middleware"
	"github.com/bipbipboopboop/ielts-progressor/internal/transport/rest"
)

// lifecycleTimeout bounds one asynchronous profile creation.
const lifecycleTimeout = 30 * time.Second

// Container holds the wired application.
type Container struct {
	Handler    http.Handler
	Dispatcher *accountsvc.Dispatcher
	Accounts   *accountsvc.Service
}

// Build wires repositories, adapters, services and the HTTP router.
func Build(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Container {
	// Repositories.
	txm := postgres.NewTxManager(pool)
	accounts := accountrepo.New(pool)
	attempts := attemptrepo.New(pool)
	identities := identityrepo.New(pool)

	// External providers.
	backend := NewGenerationBackend(cfg.Generation, logger)
	meanings := NewMeaningLookup(cfg.Dictionary, logger)

	// Services.
	accountService := accountsvc.NewService(logger, accounts, identities)
	dispatcher := accountsvc.NewDispatcher(logger, accountService, lifecycleTimeout)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, identities, jwtMgr, dispatcher, cfg.Auth)

	scorer := scoring.NewService(logger)
	practiceService := practice.NewService(logger, accounts, attempts, txm, backend, scorer, meanings)

	// HTTP.
	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(BuildVersion(), rest.Component{Name: "database", Pinger: pool}),
		Auth:     rest.NewAuthHandler(authService, logger),
		Practice: rest.NewPracticeHandler(practiceService, accountService, logger),
		Hook:     rest.NewHookHandler(accountService, cfg.Auth.HookSecret, logger),
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Logger(logger),
	)

	return &Container{
		Handler:    rest.NewRouter(handlers, chain),
		Dispatcher: dispatcher,
		Accounts:   accountService,
	}
}

// NewGenerationBackend selects the text-generation backend named in cfg.
func NewGenerationBackend(cfg config.GenerationConfig, logger *slog.Logger) generation.Backend {
	if cfg.Backend == config.BackendAnthropic {
		return anthropic.NewClient(anthropic.Options{
			APIKey:       cfg.AnthropicAPIKey,
			BaseURL:      cfg.AnthropicBaseURL,
			PassageModel: cfg.AnthropicPassageModel,
			ScoringModel: cfg.AnthropicScoringModel,
			HTTPTimeout:  cfg.HTTPTimeout,
		}, logger)
	}

	tokens := watsonx.NewTokenProvider(cfg.APIKey, cfg.TokenURL, cfg.HTTPTimeout, logger)
	return watsonx.NewClient(tokens, watsonx.Options{
		GenerationURL: cfg.GenerationURL,
		ProjectID:     cfg.ProjectID,
		PassageModel:  cfg.PassageModel,
		ScoringModel:  cfg.ScoringModel,
		HTTPTimeout:   cfg.HTTPTimeout,
	}, logger)
}

// MeaningLookup resolves word meanings for submission outcomes.
type MeaningLookup interface {
	LookupMeanings(ctx context.Context, words []string) (map[string]string, error)
}

// NewMeaningLookup selects the dictionary provider named in cfg.
func NewMeaningLookup(cfg config.DictionaryConfig, logger *slog.Logger) MeaningLookup {
	if cfg.Provider == config.DictionaryStub {
		return stub.NewStub()
	}
	return freedict.NewProviderWithURL(cfg.BaseURL, cfg.HTTPTimeout, logger)
}
