package gofmi

import (
	"fmt"
	"log/slog"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/parser"
	"github.com/gofmi/gofmi/internal/tracelog"
	"github.com/gofmi/gofmi/internal/xmltree"
)

// Load reads the model description provided by source.
//
// Example:
//
//	md, err := gofmi.Load(
//	    gofmi.File("testdata/BouncingBall/modelDescription.xml"),
//	    gofmi.WithLogger(slog.Default()),
//	)
func Load(source Source, opts ...LoadOption) (*fmi.ModelDescription, error) {
	if source == nil {
		return nil, ErrNoSource
	}
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return load(source, cfg)
}

// LoadFile is shorthand for Load with the Source chosen by Detect.
func LoadFile(path string, opts ...LoadOption) (*fmi.ModelDescription, error) {
	src, err := Detect(path)
	if err != nil {
		return nil, err
	}
	return Load(src, opts...)
}

func load(source Source, cfg loadConfig) (*fmi.ModelDescription, error) {
	log := tracelog.For(cfg.logger, "loader")

	rc, name, err := source.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	log.Debug("reading model description", slog.String("source", name))

	root, err := xmltree.Read(rc, cfg.charsetReader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	md, err := parser.New(cfg.logger).Parse(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return md, nil
}
