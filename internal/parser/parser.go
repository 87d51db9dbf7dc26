// Package parser builds an fmi.ModelDescription from an FMI 2.0
// modelDescription element tree.
//
// Parsing is a single pass over the tree. Elements the parser does not
// recognize are skipped (and logged at trace level); absent optional
// attributes and groups resolve to their defaults. A missing required
// attribute, an unconvertible attribute value, or a ScalarVariable without a
// typed payload fails the whole parse.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/tracelog"
	"github.com/gofmi/gofmi/internal/xmlattr"
	"github.com/gofmi/gofmi/internal/xmltree"
)

// Element names consumed by the parser.
const (
	elemModelDescription = "fmiModelDescription"
	elemCoSimulation     = "CoSimulation"
	elemModelExchange    = "ModelExchange"
	elemDefaultExp       = "DefaultExperiment"
	elemModelVariables   = "ModelVariables"
	elemModelStructure   = "ModelStructure"
	elemLogCategories    = "LogCategories"
	elemTypeDefinitions  = "TypeDefinitions"
	elemUnitDefinitions  = "UnitDefinitions"
)

// Parser converts element trees into model descriptions. A Parser holds
// no per-document state and may be reused and shared between goroutines.
type Parser struct {
	tracelog.Logger
}

// New returns a Parser. Pass nil for logger to disable logging.
func New(logger *slog.Logger) *Parser {
	return &Parser{Logger: tracelog.For(logger, "parser")}
}

// Parse builds the model description rooted at root.
func (p *Parser) Parse(root *etree.Element) (*fmi.ModelDescription, error) {
	if root == nil || root.Tag != elemModelDescription {
		tag := ""
		if root != nil {
			tag = root.Tag
		}
		return nil, fmt.Errorf("%w: got %q, want %q", fmi.ErrUnexpectedRoot, tag, elemModelDescription)
	}

	base, err := p.parseRootAttributes(root)
	if err != nil {
		return nil, err
	}

	var (
		coSimulation  fmi.Optional[fmi.CoSimulationAttributes]
		modelExchange fmi.Optional[fmi.ModelExchangeAttributes]
	)

	for _, child := range root.ChildElements() {
		switch child.Tag {
		case elemCoSimulation:
			cs, err := parseCoSimulationAttributes(child)
			if err != nil {
				return nil, fmt.Errorf("CoSimulation: %w", err)
			}
			coSimulation = fmi.Some(cs)
		case elemModelExchange:
			me, err := parseModelExchangeAttributes(child)
			if err != nil {
				return nil, fmt.Errorf("ModelExchange: %w", err)
			}
			modelExchange = fmi.Some(me)
		case elemDefaultExp:
			ex, err := parseDefaultExperiment(child)
			if err != nil {
				return nil, fmt.Errorf("DefaultExperiment: %w", err)
			}
			base.DefaultExperiment = fmi.Some(ex)
		case elemModelVariables:
			vars, err := p.parseModelVariables(child)
			if err != nil {
				return nil, fmt.Errorf("ModelVariables: %w", err)
			}
			base.ModelVariables = vars
		case elemModelStructure:
			ms, err := p.parseModelStructure(child)
			if err != nil {
				return nil, fmt.Errorf("ModelStructure: %w", err)
			}
			base.ModelStructure = ms
		case elemLogCategories:
			cats, err := p.parseLogCategories(child)
			if err != nil {
				return nil, fmt.Errorf("LogCategories: %w", err)
			}
			base.LogCategories = cats
		case elemTypeDefinitions:
			defs, err := p.parseTypeDefinitions(child)
			if err != nil {
				return nil, fmt.Errorf("TypeDefinitions: %w", err)
			}
			base.TypeDefinitions = defs
		case elemUnitDefinitions:
			units, err := p.parseUnitDefinitions(child)
			if err != nil {
				return nil, fmt.Errorf("UnitDefinitions: %w", err)
			}
			base.UnitDefinitions = units
		default:
			p.ignore(child)
		}
	}

	md := fmi.NewModelDescription(base, coSimulation, modelExchange)
	if p.Enabled(slog.LevelDebug) {
		p.Debug("parsed model description",
			slog.String("model", md.ModelName()),
			slog.String("guid", md.GUID()),
			slog.Int("variables", md.ModelVariables().Len()),
			slog.Bool("coSimulation", md.SupportsCoSimulation()),
			slog.Bool("modelExchange", md.SupportsModelExchange()))
	}
	return md, nil
}

func (p *Parser) parseRootAttributes(root *etree.Element) (fmi.ModelDescriptionBase, error) {
	var (
		base fmi.ModelDescriptionBase
		err  error
	)
	if base.GUID, err = xmlattr.RequiredString(root, "guid"); err != nil {
		return base, err
	}
	if base.FmiVersion, err = xmlattr.RequiredString(root, "fmiVersion"); err != nil {
		return base, err
	}
	if base.ModelName, err = xmlattr.RequiredString(root, "modelName"); err != nil {
		return base, err
	}
	base.Description = xmlattr.StringOr(root, "description", "")
	base.Author = xmlattr.StringOr(root, "author", "")
	base.Version = xmlattr.StringOr(root, "version", "")
	base.License = xmlattr.StringOr(root, "license", "")
	base.Copyright = xmlattr.StringOr(root, "copyright", "")
	base.GenerationTool = xmlattr.StringOr(root, "generationTool", "")
	base.GenerationDateAndTime = xmlattr.StringOr(root, "generationDateAndTime", "")
	base.VariableNamingConvention = xmlattr.StringOr(root, "variableNamingConvention",
		fmi.DefaultVariableNamingConvention)
	if base.NumberOfEventIndicators, err = xmlattr.UintOr(root, "numberOfEventIndicators", 0); err != nil {
		return base, err
	}
	return base, nil
}

func parseDefaultExperiment(el *etree.Element) (fmi.DefaultExperiment, error) {
	var (
		ex  fmi.DefaultExperiment
		err error
	)
	if ex.StartTime, err = xmlattr.Float64(el, "startTime"); err != nil {
		return ex, err
	}
	if ex.StopTime, err = xmlattr.Float64(el, "stopTime"); err != nil {
		return ex, err
	}
	if ex.StepSize, err = xmlattr.Float64(el, "stepSize"); err != nil {
		return ex, err
	}
	if ex.Tolerance, err = xmlattr.Float64(el, "tolerance"); err != nil {
		return ex, err
	}
	return ex, nil
}

// ignore records an element the parser does not consume.
func (p *Parser) ignore(el *etree.Element) {
	if p.TraceEnabled() {
		p.Trace("ignoring element",
			slog.String("tag", el.FullTag()),
			slog.String("path", xmltree.Path(el)))
	}
}
