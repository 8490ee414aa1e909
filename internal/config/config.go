// Package config defines the problem file shared by the CLI and the HTTP
// server: colony parameters, an optional start label and a list of
// geographic nodes.
//
// The same struct decodes from TOML (files on disk) and JSON (request
// bodies). Keys that are absent keep their defaults, which are the
// aco.DefaultOptions values.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/geo"
)

// Sentinel errors.
var (
	ErrUnknownKey  = errors.New("config: unknown key")
	ErrNoNodes     = errors.New("config: no [[node]] entries")
	ErrEmptyLabel  = errors.New("config: node label is empty")
	ErrInvalidNode = errors.New("config: invalid node")
)

// Colony mirrors aco.Options in file form.
type Colony struct {
	Ants        int     `toml:"ants" json:"ants"`
	Alpha       float64 `toml:"alpha" json:"alpha"`
	Beta        float64 `toml:"beta" json:"beta"`
	Evaporation float64 `toml:"evaporation" json:"evaporation"`
	Deposit     float64 `toml:"deposit" json:"deposit"`
	Iterations  int     `toml:"iterations" json:"iterations"`
	Seed        int64   `toml:"seed" json:"seed"`
	Workers     int     `toml:"workers" json:"workers"`
	ZeroPolicy  string  `toml:"zero_policy" json:"zero_policy"`
}

// Node is one labelled point.
type Node struct {
	Label string  `toml:"label" json:"label"`
	Lat   float64 `toml:"lat" json:"lat"`
	Lon   float64 `toml:"lon" json:"lon"`
}

// File is a complete problem description.
//
//	start = "Berlin"
//
//	[colony]
//	ants = 50
//	zero_policy = "uniform"
//
//	[[node]]
//	label = "Berlin"
//	lat = 52.52
//	lon = 13.405
type File struct {
	Start  string `toml:"start" json:"start"`
	Colony Colony `toml:"colony" json:"colony"`
	Nodes  []Node `toml:"node" json:"nodes"`
}

// Default returns a File with no nodes and the default colony parameters.
func Default() File {
	o := aco.DefaultOptions()
	return File{Colony: Colony{
		Ants:        o.AntCount,
		Alpha:       o.Alpha,
		Beta:        o.Beta,
		Evaporation: o.Evaporation,
		Deposit:     o.Deposit,
		Iterations:  o.Iterations,
		Seed:        o.Seed,
		Workers:     o.Workers,
		ZeroPolicy:  o.ZeroPolicy.String(),
	}}
}

// Load reads and decodes a TOML problem file.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode reads TOML from r on top of Default(). Unknown keys are rejected.
func Decode(r io.Reader) (File, error) {
	file := Default()
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return File{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, fmt.Errorf("%s: %w", strings.Join(keys, ", "), ErrUnknownKey)
	}

	return file, nil
}

// Options converts the colony section, validating every field.
func (f File) Options() (aco.Options, error) {
	policy, err := aco.ParseZeroPolicy(f.Colony.ZeroPolicy)
	if err != nil {
		return aco.Options{}, err
	}
	o := aco.Options{
		AntCount:    f.Colony.Ants,
		Alpha:       f.Colony.Alpha,
		Beta:        f.Colony.Beta,
		Evaporation: f.Colony.Evaporation,
		Deposit:     f.Colony.Deposit,
		Iterations:  f.Colony.Iterations,
		Seed:        f.Colony.Seed,
		Workers:     f.Colony.Workers,
		ZeroPolicy:  policy,
	}
	if err := o.Validate(); err != nil {
		return aco.Options{}, err
	}

	return o, nil
}

// Problem converts the node list to a colony problem over geo points with
// great-circle distances. Node order is kept; labels must be unique.
func (f File) Problem() (aco.Problem[string, geo.Point], error) {
	if len(f.Nodes) == 0 {
		return aco.Problem[string, geo.Point]{}, ErrNoNodes
	}
	nodes := make([]aco.Node[string, geo.Point], len(f.Nodes))
	for i, n := range f.Nodes {
		if strings.TrimSpace(n.Label) == "" {
			return aco.Problem[string, geo.Point]{}, fmt.Errorf("node %d: %w", i, ErrEmptyLabel)
		}
		p := geo.Point{Lat: n.Lat, Lon: n.Lon}
		if err := p.Validate(); err != nil {
			return aco.Problem[string, geo.Point]{}, fmt.Errorf("node %q: %w: %w", n.Label, ErrInvalidNode, err)
		}
		nodes[i] = aco.Node[string, geo.Point]{Label: n.Label, Payload: p}
	}

	prob := aco.Problem[string, geo.Point]{Nodes: nodes, Distance: geo.Haversine}
	if f.Start != "" {
		start := f.Start
		prob.Start = &start
	}

	return prob, nil
}
