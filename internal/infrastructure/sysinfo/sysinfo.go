// Package sysinfo exposes the read-only process state the handlers report:
// environment mode, clock, start time and host identity.
package sysinfo

import (
	"os"
	"time"
)

// TimestampLayout renders UTC times with millisecond precision and a Z
// suffix, e.g. 2024-01-01T12:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// processStartedAt is the default start time, taken when the binary loads.
var processStartedAt = time.Now()

type Options struct {
	Environment string
	StartedAt   time.Time
	Now         func() time.Time
	Hostname    func() (string, error)
}

type Process struct {
	environment string
	startedAt   time.Time
	now         func() time.Time
	hostname    func() (string, error)
}

func New(opts Options) *Process {
	p := &Process{
		environment: opts.Environment,
		startedAt:   opts.StartedAt,
		now:         opts.Now,
		hostname:    opts.Hostname,
	}

	if p.now == nil {
		p.now = time.Now
	}
	if p.hostname == nil {
		p.hostname = os.Hostname
	}
	if p.startedAt.IsZero() {
		p.startedAt = processStartedAt
	}

	return p
}

func (p *Process) Environment() string {
	return p.environment
}

func (p *Process) Now() time.Time {
	return p.now()
}

func (p *Process) StartedAt() time.Time {
	return p.startedAt
}

// Uptime never goes negative, even if the clock steps backwards.
func (p *Process) Uptime() time.Duration {
	d := p.now().Sub(p.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

func (p *Process) Hostname() (string, error) {
	return p.hostname()
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
