package config

import "github.com/urfave/cli/v3"

// Server holds HTTP server configuration
type Server struct {
	Addr        string
	AdminSecret string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("GROUPBUY_ADDR"),
		},
		&cli.StringFlag{
			Name:        "admin-secret",
			Usage:       "HMAC secret for admin console tokens (empty disables the console)",
			Destination: &c.AdminSecret,
			Sources:     cli.EnvVars("GROUPBUY_ADMIN_SECRET"),
		},
	}
}
