package server

import (
	"net"
	"strconv"
)

// DefaultPort is the port listened on when none is configured.
const DefaultPort = 3000

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

// Addr returns the listen address.
func (c HttpConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
