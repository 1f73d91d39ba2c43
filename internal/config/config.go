package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ark-network/countdown/internal/core/application"
	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/core/ports"
	"github.com/ark-network/countdown/internal/infrastructure/db"
	watermillpublisher "github.com/ark-network/countdown/internal/infrastructure/publisher/watermill"
	redispublisher "github.com/ark-network/countdown/internal/infrastructure/publisher/redis"
	timescheduler "github.com/ark-network/countdown/internal/infrastructure/scheduler/gocron"
	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	supportedDbs = supportedType{
		"badger": {},
		"sqlite": {},
	}
	supportedPublishers = supportedType{
		"watermill": {},
		"redis":     {},
	}
	supportedSchedulers = supportedType{
		"gocron": {},
	}
)

type Config struct {
	Datadir     string
	Port        uint32
	NoAuth      bool
	AuthMaxSkew time.Duration
	LogLevel    int

	DbType             string
	DbDir              string
	EventPublisherType string
	RedisUrl           string
	SchedulerType      string
	AutoClaimInterval  int64

	Admin                   string
	Treasury                string
	InitialStakeAmount      string
	InitialEndDelay         *uint64
	InitialCoolDownDuration *uint64

	repo      ports.RepoManager
	publisher ports.EventPublisher
	scheduler ports.SchedulerService
	clock     ports.Clock
	svc       application.Service
	adminSvc  application.AdminService
}

func (c *Config) String() string {
	json, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("error while marshalling config JSON: %s", err)
	}
	return string(json)
}

var (
	Datadir            = "DATADIR"
	Port               = "PORT"
	NoAuth             = "NO_AUTH"
	AuthMaxSkew        = "AUTH_MAX_SKEW"
	LogLevel           = "LOG_LEVEL"
	DbType             = "DB_TYPE"
	EventPublisherType = "EVENT_PUBLISHER_TYPE"
	RedisUrl           = "REDIS_URL"
	SchedulerType      = "SCHEDULER_TYPE"
	AutoClaimInterval  = "AUTO_CLAIM_INTERVAL"
	Admin              = "ADMIN"
	Treasury           = "TREASURY"
	InitialStakeAmount = "INITIAL_STAKE_AMOUNT"
	InitialEndDelay    = "INITIAL_END_DELAY"
	InitialCoolDown    = "INITIAL_COOLDOWN"

	defaultDatadir            = appDataDir("countdownd")
	DefaultPort               = 7171
	defaultNoAuth             = false
	defaultAuthMaxSkew        = 300
	defaultLogLevel           = 4
	defaultDbType             = "badger"
	defaultEventPublisherType = "watermill"
	defaultRedisUrl           = "redis://localhost:6379/0"
	defaultSchedulerType      = "gocron"
	defaultAutoClaimInterval  = 0
)

func LoadConfig() (*Config, error) {
	viper.SetEnvPrefix("COUNTDOWN")
	viper.AutomaticEnv()

	viper.SetDefault(Datadir, defaultDatadir)
	viper.SetDefault(Port, DefaultPort)
	viper.SetDefault(NoAuth, defaultNoAuth)
	viper.SetDefault(AuthMaxSkew, defaultAuthMaxSkew)
	viper.SetDefault(LogLevel, defaultLogLevel)
	viper.SetDefault(DbType, defaultDbType)
	viper.SetDefault(EventPublisherType, defaultEventPublisherType)
	viper.SetDefault(RedisUrl, defaultRedisUrl)
	viper.SetDefault(SchedulerType, defaultSchedulerType)
	viper.SetDefault(AutoClaimInterval, defaultAutoClaimInterval)

	if err := initDatadir(); err != nil {
		return nil, fmt.Errorf("error while creating datadir: %s", err)
	}

	dbPath := filepath.Join(viper.GetString(Datadir), "db")
	if err := makeDirectoryIfNotExists(dbPath); err != nil {
		return nil, fmt.Errorf("error while creating db dir: %s", err)
	}

	return &Config{
		Datadir:                 viper.GetString(Datadir),
		Port:                    viper.GetUint32(Port),
		NoAuth:                  viper.GetBool(NoAuth),
		AuthMaxSkew:             time.Duration(viper.GetInt64(AuthMaxSkew)) * time.Second,
		LogLevel:                viper.GetInt(LogLevel),
		DbType:                  viper.GetString(DbType),
		DbDir:                   dbPath,
		EventPublisherType:      viper.GetString(EventPublisherType),
		RedisUrl:                viper.GetString(RedisUrl),
		SchedulerType:           viper.GetString(SchedulerType),
		AutoClaimInterval:       viper.GetInt64(AutoClaimInterval),
		Admin:                   viper.GetString(Admin),
		Treasury:                viper.GetString(Treasury),
		InitialStakeAmount:      viper.GetString(InitialStakeAmount),
		InitialEndDelay:         optionalUint64(InitialEndDelay),
		InitialCoolDownDuration: optionalUint64(InitialCoolDown),
	}, nil
}

func initDatadir() error {
	datadir := viper.GetString(Datadir)
	return makeDirectoryIfNotExists(datadir)
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

func optionalUint64(key string) *uint64 {
	if !viper.IsSet(key) {
		return nil
	}
	value := viper.GetUint64(key)
	return &value
}

func (c *Config) Validate() error {
	if !supportedDbs.supports(c.DbType) {
		return fmt.Errorf("db type not supported, please select one of: %s", supportedDbs)
	}
	if !supportedPublishers.supports(c.EventPublisherType) {
		return fmt.Errorf(
			"event publisher type not supported, please select one of: %s", supportedPublishers,
		)
	}
	if !supportedSchedulers.supports(c.SchedulerType) {
		return fmt.Errorf("scheduler type not supported, please select one of: %s", supportedSchedulers)
	}
	if c.AutoClaimInterval < 0 {
		return fmt.Errorf("invalid auto claim interval, must be >= 0")
	}
	if c.AuthMaxSkew <= 0 {
		return fmt.Errorf("invalid auth max skew, must be positive")
	}
	if c.EventPublisherType == "redis" && c.RedisUrl == "" {
		return fmt.Errorf("missing redis url")
	}
	if c.NoAuth {
		log.Warn("caller authentication is disabled, do not use in production")
	}

	gameCfg, err := c.gameConfig()
	if err != nil {
		return err
	}

	if err := c.repoManager(); err != nil {
		return err
	}
	if err := c.publisherService(); err != nil {
		return err
	}
	if err := c.schedulerService(); err != nil {
		return err
	}
	c.clock = clock.New()
	return c.appService(*gameCfg)
}

func (c *Config) AppService() application.Service {
	return c.svc
}

func (c *Config) AdminService() application.AdminService {
	return c.adminSvc
}

func (c *Config) gameConfig() (*application.GameConfig, error) {
	if c.Admin == "" {
		return nil, fmt.Errorf("missing admin")
	}
	admin, err := domain.ParseIdentity(c.Admin)
	if err != nil {
		return nil, fmt.Errorf("invalid admin: %s", err)
	}
	if c.Treasury == "" {
		return nil, fmt.Errorf("missing treasury")
	}
	treasury, err := domain.ParseIdentity(c.Treasury)
	if err != nil {
		return nil, fmt.Errorf("invalid treasury: %s", err)
	}

	cfg := &application.GameConfig{
		Admin:             admin,
		Treasury:          treasury,
		EndDelay:          c.InitialEndDelay,
		CoolDownDuration:  c.InitialCoolDownDuration,
		AutoClaimInterval: c.AutoClaimInterval,
	}
	if c.InitialStakeAmount != "" {
		amount, err := domain.AmountFromString(c.InitialStakeAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid initial stake amount: %s", err)
		}
		cfg.StakeAmount = &amount
	}
	return cfg, nil
}

func (c *Config) repoManager() error {
	var dataStoreConfig []interface{}
	logger := log.New()

	switch c.DbType {
	case "badger":
		dataStoreConfig = []interface{}{c.DbDir, logger}
	case "sqlite":
		dataStoreConfig = []interface{}{c.DbDir}
	default:
		return fmt.Errorf("unknown db type")
	}

	svc, err := db.NewService(db.ServiceConfig{
		DataStoreType:   c.DbType,
		DataStoreConfig: dataStoreConfig,
	})
	if err != nil {
		return err
	}

	c.repo = svc
	return nil
}

func (c *Config) publisherService() error {
	var svc ports.EventPublisher
	var err error
	switch c.EventPublisherType {
	case "watermill":
		svc = watermillpublisher.NewPublisher()
	case "redis":
		svc, err = redispublisher.NewPublisherFromURL(c.RedisUrl)
	default:
		err = fmt.Errorf("unknown event publisher type")
	}
	if err != nil {
		return err
	}

	c.publisher = svc
	return nil
}

func (c *Config) schedulerService() error {
	var svc ports.SchedulerService
	var err error
	switch c.SchedulerType {
	case "gocron":
		svc = timescheduler.NewScheduler()
	default:
		err = fmt.Errorf("unknown scheduler type")
	}
	if err != nil {
		return err
	}

	c.scheduler = svc
	return nil
}

func (c *Config) appService(cfg application.GameConfig) error {
	svc, err := application.NewService(
		cfg, c.repo, c.publisher, c.scheduler, c.clock,
	)
	if err != nil {
		return err
	}

	c.svc = svc
	c.adminSvc = svc
	return nil
}

func appDataDir(appName string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(homeDir, "."+appName)
}

type supportedType map[string]struct{}

func (t supportedType) String() string {
	types := make([]string, 0, len(t))
	for tt := range t {
		types = append(types, tt)
	}
	return strings.Join(types, " | ")
}

func (t supportedType) supports(typeStr string) bool {
	_, ok := t[typeStr]
	return ok
}
