// Package gofmi loads FMI 2.0 model descriptions.
//
// A model description is read from a Source (a modelDescription.xml file,
// an extracted FMU directory, an .fmu archive, or memory) and returned as
// an immutable *fmi.ModelDescription:
//
//	md, err := gofmi.Load(gofmi.FMU("BouncingBall.fmu"))
//	if err != nil {
//	    return err
//	}
//	for _, v := range md.ModelVariables().All() {
//	    fmt.Println(v.Name(), v.Type(), v.Causality())
//	}
//
// Loading is all-or-nothing: on error no partial description is returned.
// Loads share no state and may run concurrently.
package gofmi

import (
	"errors"
	"log/slog"

	"github.com/gofmi/gofmi/internal/tracelog"
	"github.com/gofmi/gofmi/internal/xmltree"
)

// ErrNoSource is returned when Load is called with a nil source.
var ErrNoSource = errors.New("no model description source provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-element logging (variables, ignored elements).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = tracelog.LevelTrace

// CharsetReader converts a document declared in a non-UTF-8 encoding to UTF-8.
type CharsetReader = xmltree.CharsetReader

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger        *slog.Logger
	charsetReader CharsetReader
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// WithCharsetReader overrides the decoder used for documents whose XML
// declaration names an encoding other than UTF-8. The default handles
// every WHATWG encoding label.
func WithCharsetReader(cr CharsetReader) LoadOption {
	return func(c *loadConfig) { c.charsetReader = cr }
}
