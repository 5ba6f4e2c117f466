package netif

import (
	"github.com/grandcat/zeroconf"
)

const (
	mdnsService = "_http._tcp"
	mdnsDomain  = "local."
)

type announcer struct {
	srv *zeroconf.Server
}

func announce(name string, port int) (*announcer, error) {
	srv, err := zeroconf.Register(name, mdnsService, mdnsDomain, port, []string{"path=/", "server=hidbridge"}, nil)
	if err != nil {
		return nil, err
	}
	return &announcer{srv: srv}, nil
}

func (a *announcer) Shutdown() { a.srv.Shutdown() }
