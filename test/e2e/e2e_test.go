// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/common/config"
	"franchise-fit/internal/common/database"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/models"
	"franchise-fit/internal/profile"
	"franchise-fit/internal/scoring"

	querycatalog "franchise-fit/internal/workers/data-access/query-catalog"
	applyrelevanceranking "franchise-fit/internal/workers/franchise/apply-relevance-ranking"
	calculatematchscore "franchise-fit/internal/workers/franchise/calculate-match-score"
	getfranchisedetail "franchise-fit/internal/workers/franchise/get-franchise-detail"
	parsesearchfilters "franchise-fit/internal/workers/franchise/parse-search-filters"
	validateprofile "franchise-fit/internal/workers/profile/validate-profile"
)

// The suite talks to real Zeebe, PostgreSQL, Elasticsearch and Redis
// instances from configs/config.yaml. It only runs when E2E=1 is set.

var (
	zeebeClient zbc.Client
	zapLog      *zap.Logger
)

var seedFranchises = []models.Franchise{
	{
		Slug: "e2e-burger-barn", Name: "E2E Burger Barn", Category: "Food & Beverage",
		InvestmentMin: 350000, InvestmentMax: 900000, UnitCount: 420, UnitsOpened: 38, UnitsClosed: 9,
		YearFounded: 1998, Tags: []string{"brick-and-mortar", "manager-run"},
	},
	{
		Slug: "e2e-pet-spa", Name: "E2E Mobile Pet Spa", Category: "Pet Services",
		InvestmentMin: 90000, InvestmentMax: 160000, UnitCount: 140, UnitsOpened: 25, UnitsClosed: 3,
		YearFounded: 2012, Tags: []string{"mobile", "owner-operator"},
	},
}

func TestMain(m *testing.M) {
	if os.Getenv("E2E") != "1" {
		fmt.Println("skipping e2e suite: set E2E=1 to run against live services")
		os.Exit(0)
	}

	var err error
	zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         "localhost:26500",
		UsePlaintextConnection: true,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to Zeebe: %v", err))
	}
	zapLog, _ = zap.NewProduction()

	code := m.Run()

	zeebeClient.Close()
	os.Exit(code)
}

type services struct {
	pg      *database.SQLClient
	es      *database.ElasticsearchClient
	redis   *database.RedisClient
	catalog *catalog.Catalog
	store   *catalog.Store
	index   *catalog.SearchIndex
	profile *profile.Store
}

func TestFullE2E(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	require.NoError(t, err)

	svc := connectServices(ctx, t, cfg)
	seedCatalog(ctx, t, svc)

	log := logger.NewZapAdapter(zapLog)
	userID := "e2e-" + uuid.NewString()

	// ==========================
	// 1. validate-profile persists the answers
	// ==========================
	vpHandler := validateprofile.NewHandler(nil, svc.profile, nil, log)
	vpOut, err := vpHandler.Execute(ctx, &validateprofile.Input{
		UserID: userID,
		Answers: map[string]interface{}{
			"budget":        "100-200",
			"interests":     []interface{}{"Pet Services"},
			"style":         "owner-operator",
			"riskTolerance": "moderate",
		},
		Persist: true,
	})
	require.NoError(t, err)
	assert.True(t, vpOut.Valid)
	assert.True(t, vpOut.Persisted)

	// ==========================
	// 2. parse-search-filters + query-catalog against Elasticsearch
	// ==========================
	psfOut, err := parsesearchfilters.NewHandler(nil, svc.catalog, nil, log).Execute(ctx, &parsesearchfilters.Input{
		RawFilters: map[string]interface{}{"query": "E2E"},
	})
	require.NoError(t, err)

	pf := psfOut.ParsedFilters
	qcOut, err := querycatalog.NewHandler(nil, svc.index, nil, log).Execute(ctx, &querycatalog.Input{
		ParsedFilters: &querycatalog.ParsedFilters{
			Filter:     pf.Filter,
			SortBy:     pf.SortBy,
			Pagination: querycatalog.Pagination{From: pf.Pagination.From, Size: pf.Pagination.Size},
		},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(qcOut.Franchises), 2)

	// ==========================
	// 3. apply-relevance-ranking reads the stored profile
	// ==========================
	engine := scoring.New()
	arrOut, err := applyrelevanceranking.NewHandler(applyrelevanceranking.HandlerOptions{
		Engine:   engine,
		Catalog:  svc.catalog,
		Profiles: svc.profile,
		Logger:   log,
	}).Execute(ctx, &applyrelevanceranking.Input{UserID: userID, Franchises: qcOut.Franchises})
	require.NoError(t, err)
	require.NotEmpty(t, arrOut.RankedFranchises)
	assert.False(t, arrOut.UsedDefaults)
	assert.Equal(t, "e2e-pet-spa", arrOut.RankedFranchises[0].Slug)

	// ==========================
	// 4. calculate-match-score agrees with the ranking
	// ==========================
	cmsOut, err := calculatematchscore.NewHandler(calculatematchscore.HandlerOptions{
		Engine:   engine,
		Catalog:  svc.catalog,
		Profiles: svc.profile,
		Logger:   log,
	}).Execute(ctx, &calculatematchscore.Input{UserID: userID, FranchiseSlug: "e2e-pet-spa"})
	require.NoError(t, err)
	assert.Equal(t, arrOut.RankedFranchises[0].Score, cmsOut.MatchScore)

	// ==========================
	// 5. get-franchise-detail falls back to PostgreSQL
	// ==========================
	empty, err := catalog.New(nil)
	require.NoError(t, err)
	gfdOut, err := getfranchisedetail.NewHandler(getfranchisedetail.HandlerOptions{
		Catalog: empty,
		Store:   svc.store,
		Logger:  log,
	}).Execute(ctx, &getfranchisedetail.Input{Slug: "e2e-burger-barn"})
	require.NoError(t, err)
	assert.Equal(t, "E2E Burger Barn", gfdOut.Franchise.Name)

	// ==========================
	// 6. the gateway accepts process starts
	// ==========================
	_, err = zeebeClient.NewTopologyCommand().Send(ctx)
	assert.NoError(t, err, "Zeebe topology request failed")
}

func connectServices(ctx context.Context, t *testing.T, cfg *config.Config) *services {
	t.Helper()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	require.NoError(t, err, "PostgreSQL connection failed")
	require.NoError(t, pg.Ping(ctx), "PostgreSQL ping failed")
	t.Cleanup(func() { pg.Close() })

	rdb, err := database.NewRedis(cfg.Database.Redis)
	require.NoError(t, err, "Redis client creation failed")
	require.NoError(t, rdb.Ping(ctx), "Redis ping failed")
	t.Cleanup(func() { rdb.Close() })

	es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	require.NoError(t, err, "Elasticsearch client creation failed")
	require.NoError(t, es.Ping(ctx), "Elasticsearch ping failed")

	profiles := profile.NewStore(pg.DB, rdb.Client, profile.Options{KeyPrefix: "e2e:profile:"}, logger.NewZapAdapter(zapLog))
	require.NoError(t, profiles.EnsureSchema(ctx))

	return &services{
		pg:      pg,
		es:      es,
		redis:   rdb,
		store:   catalog.NewStore(pg),
		index:   catalog.NewSearchIndex(es.Client, es.Index),
		profile: profiles,
	}
}

func seedCatalog(ctx context.Context, t *testing.T, svc *services) {
	t.Helper()

	require.NoError(t, svc.store.EnsureSchema(ctx))
	require.NoError(t, svc.store.Upsert(ctx, seedFranchises))

	require.NoError(t, svc.index.EnsureIndex(ctx))
	require.NoError(t, svc.index.IndexAll(ctx, seedFranchises))

	cat, err := catalog.New(seedFranchises)
	require.NoError(t, err)
	svc.catalog = cat
}
