// Package services implements domain business logic and use cases.
package services

import (
	"fmt"
	"math/bits"
	"runtime"

	"github.com/ochairo/xercesdist/internal/domain/entities"
	"github.com/ochairo/xercesdist/internal/domain/interfaces"
)

// HostProbe reports the OS name and pointer width of the running process
type HostProbe func() (goos string, wordSize int)

// RuntimeProbe reads the host facts from the Go runtime
func RuntimeProbe() (string, int) {
	return runtime.GOOS, bits.UintSize
}

// Resolver picks the Xerces-C distribution for a host from a fixed table
type Resolver struct {
	table  *entities.DistributionTable
	probe  HostProbe
	logger interfaces.Logger
}

// NewResolver creates a resolver over table.
// A nil table means the built-in table; a nil logger discards output.
func NewResolver(table *entities.DistributionTable, logger interfaces.Logger) *Resolver {
	if table == nil {
		table = entities.DefaultTable()
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &Resolver{
		table:  table,
		probe:  RuntimeProbe,
		logger: logger,
	}
}

// WithProbe returns a copy of r that detects the host with probe
func (r *Resolver) WithProbe(probe HostProbe) *Resolver {
	cp := *r
	cp.probe = probe
	return &cp
}

// DetectHost reads the host family and pointer width
func (r *Resolver) DetectHost() (entities.Host, error) {
	goos, wordSize := r.probe()

	family, err := entities.ParseFamily(goos)
	if err != nil {
		return entities.Host{}, fmt.Errorf("detect host: %w", err)
	}

	width, err := entities.WidthFromBits(wordSize)
	if err != nil {
		return entities.Host{}, fmt.Errorf("detect host: %w", err)
	}

	host := entities.Host{Family: family, Width: width}
	r.logger.Debug("Detected host",
		interfaces.F("goos", goos),
		interfaces.F("word_size", wordSize),
		interfaces.F("host", host.String()))

	return host, nil
}

// Resolve selects the distribution for host
func (r *Resolver) Resolve(host entities.Host) (entities.Selection, error) {
	pair, err := r.table.Lookup(host.Family)
	if err != nil {
		r.logger.Error("No distribution for host", interfaces.F("host", host.String()))
		return entities.Selection{}, err
	}

	name, err := pair.Select(host.Width)
	if err != nil {
		return entities.Selection{}, fmt.Errorf("resolve %s: %w", host, err)
	}

	selection := entities.Selection{
		Host:  host,
		Pair:  pair,
		Name:  name,
		IsZip: host.Family == entities.Windows,
		Is64:  host.Width == entities.Width32,
	}

	r.logger.Debug("Resolved distribution",
		interfaces.F("host", host.String()),
		interfaces.F("name", selection.Name),
		interfaces.F("is_zip", selection.IsZip))

	return selection, nil
}

// ResolveNamed resolves for a family and width given as text, e.g. ("Linux", "amd64")
func (r *Resolver) ResolveNamed(family, width string) (entities.Selection, error) {
	f, err := entities.ParseFamily(family)
	if err != nil {
		return entities.Selection{}, err
	}

	w, err := entities.ParseWidth(width)
	if err != nil {
		return entities.Selection{}, err
	}

	return r.Resolve(entities.Host{Family: f, Width: w})
}

// ResolveCurrent resolves for the running host
func (r *Resolver) ResolveCurrent() (entities.Selection, error) {
	host, err := r.DetectHost()
	if err != nil {
		return entities.Selection{}, err
	}
	return r.Resolve(host)
}

// ResolveOverride resolves for the running host with either fact replaced.
// Empty strings keep the detected value.
func (r *Resolver) ResolveOverride(family, width string) (entities.Selection, error) {
	if family != "" && width != "" {
		return r.ResolveNamed(family, width)
	}

	goos, wordSize := r.probe()
	host := entities.Host{}

	var err error
	if family != "" {
		host.Family, err = entities.ParseFamily(family)
	} else {
		host.Family, err = entities.ParseFamily(goos)
	}
	if err != nil {
		return entities.Selection{}, err
	}

	if width != "" {
		host.Width, err = entities.ParseWidth(width)
	} else {
		host.Width, err = entities.WidthFromBits(wordSize)
	}
	if err != nil {
		return entities.Selection{}, err
	}

	return r.Resolve(host)
}
