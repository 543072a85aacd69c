package config

import "github.com/urfave/cli/v3"

// Redis holds listing cache configuration. An empty Addr disables caching.
type Redis struct {
	Addr     string
	Password string
	DB       int64
}

// Flags returns CLI flags for Redis configuration
func (c *Redis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address for the listing cache (empty disables caching)",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("GROUPBUY_REDIS_ADDR"),
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Destination: &c.Password,
			Sources:     cli.EnvVars("GROUPBUY_REDIS_PASSWORD"),
		},
		&cli.Int64Flag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Destination: &c.DB,
			Sources:     cli.EnvVars("GROUPBUY_REDIS_DB"),
		},
	}
}
