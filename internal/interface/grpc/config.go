package grpcservice

import (
	"fmt"
	"net"
	"time"
)

type Config struct {
	Port        uint32
	NoAuth      bool
	AuthMaxSkew time.Duration
}

func (c Config) Validate() error {
	lis, err := net.Listen("tcp", c.address())
	if err != nil {
		return fmt.Errorf("invalid port: %s", err)
	}
	// nolint:all
	defer lis.Close()

	if !c.NoAuth && c.AuthMaxSkew <= 0 {
		return fmt.Errorf("invalid auth max skew, must be positive")
	}
	return nil
}

func (c Config) address() string {
	return fmt.Sprintf(":%d", c.Port)
}
