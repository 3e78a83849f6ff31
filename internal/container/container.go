package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/raidhealth/patient-platform/config"
	"github.com/raidhealth/patient-platform/internal/infrastructure/billing"
	"github.com/raidhealth/patient-platform/internal/infrastructure/eventbus"
)

// app-level container to share constructed components across packages.
// The router auto-wires modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	esClient    *elasticsearch.Client

	billingClient billing.AccountClient
	eventPub      eventbus.Publisher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }
func SetES(c *elasticsearch.Client) { esClient = c }
func GetES() *elasticsearch.Client  { return esClient }

func SetBilling(c billing.AccountClient)  { billingClient = c }
func GetBilling() billing.AccountClient   { return billingClient }
func SetEventPub(p eventbus.Publisher)    { eventPub = p }
func GetEventPub() eventbus.Publisher     { return eventPub }
