// prodtrack is the command-line front end for the production-management
// ERP: departments, products and production orders over its REST API.
package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"prodtrack/internal/api"
	"prodtrack/internal/auth"
	"prodtrack/internal/cache"
	"prodtrack/internal/config"
	"prodtrack/internal/queries"
)

// app carries the per-invocation session: config, token store, transport
// client and the query cache, wired once in setup.
type app struct {
	cfg     config.Config
	tokens  *auth.FileStore
	client  *api.Client
	queries *queries.Service

	redis *cache.RedisStore
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if u := c.String("base-url"); u != "" {
		cfg.BaseURL = u
	}
	a.cfg = cfg

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		tokenPath, err = auth.DefaultPath()
		if err != nil {
			return err
		}
	}
	a.tokens = auth.NewFileStore(tokenPath)

	a.client = api.New(cfg.BaseURL,
		api.WithTimeout(cfg.Timeout),
		api.WithTokenSource(a.tokens),
	)
	a.client.OnUnauthorized = func() {
		log.Warn("authentication rejected, token cleared; run `prodtrack login`")
	}

	var store cache.Store
	if cfg.RedisAddr != "" {
		a.redis = cache.NewRedisStore(cfg.RedisAddr)
		store = a.redis
	} else {
		store = cache.NewMemoryStore()
	}
	a.queries = queries.NewService(a.client, cache.New(store, cfg.CacheTTL))
	return nil
}

func (a *app) teardown(*cli.Context) error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	_ = godotenv.Load()

	a := &app{}
	cliApp := &cli.App{
		Name:  "prodtrack",
		Usage: "production-management ERP client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "API base URL (without /api)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to YAML config file",
				Value: defaultConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "debug logging",
				Action: func(*cli.Context, bool) error {
					log.SetLevel(log.DebugLevel)
					return nil
				},
			},
		},
		Before: a.setup,
		After:  a.teardown,
		Commands: []*cli.Command{
			a.loginCommand(),
			a.logoutCommand(),
			a.departmentsCommand(),
			a.productsCommand(),
			a.ordersCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(friendly(err))
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "prodtrack", "config.yaml")
}
