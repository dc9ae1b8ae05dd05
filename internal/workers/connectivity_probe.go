package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
)

const (
	defaultProbeInterval = 30 * time.Second
	probeTimeout         = 5 * time.Second
)

// ConnectivityProbe polls the server's version endpoint and notifies the
// connectivity signal when the server becomes reachable again. The server
// is assumed reachable at start, since startup has just synced with it.
type ConnectivityProbe struct {
	prober   VersionProber
	notifier *Connectivity
	interval time.Duration

	l       loop
	offline atomic.Bool

	logger *logger.Logger
}

func NewConnectivityProbe(prober VersionProber, notifier *Connectivity, interval time.Duration, logger *logger.Logger) *ConnectivityProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &ConnectivityProbe{
		prober:   prober,
		notifier: notifier,
		interval: interval,
		logger:   logger.WithComponent("connectivity-probe"),
	}
}

// Start implements [Worker].
func (p *ConnectivityProbe) Start(ctx context.Context) {
	p.l.start(p.logger.WithContext(ctx), p.interval, p.probe)
}

// Stop implements [Worker].
func (p *ConnectivityProbe) Stop() {
	p.l.stop()
}

// Online reports the result of the last probe.
func (p *ConnectivityProbe) Online() bool {
	return !p.offline.Load()
}

func (p *ConnectivityProbe) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := p.prober.GetServerVersion(probeCtx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if !p.offline.Swap(true) {
			p.logger.Warn().Err(err).
				Str("func", "ConnectivityProbe.probe").
				Msg("dictionary server is unreachable")
		}
		return
	}

	if p.offline.Swap(false) {
		p.logger.Info().
			Str("func", "ConnectivityProbe.probe").
			Msg("dictionary server is reachable again")
		p.notifier.Notify()
	}
}
