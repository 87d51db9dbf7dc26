package parser

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/xmlattr"
)

const (
	elemSourceFiles = "SourceFiles"
	elemFile        = "File"
)

// boolField binds an attribute name to the field it populates.
type boolField struct {
	attr string
	dst  *bool
}

// readBools reads each attribute into its field, defaulting to false.
func readBools(el *etree.Element, fields ...boolField) error {
	for _, f := range fields {
		v, err := xmlattr.BoolOr(el, f.attr, false)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func parseFmuAttributes(el *etree.Element) (fmi.FmuAttributes, error) {
	var (
		attrs fmi.FmuAttributes
		err   error
	)
	if attrs.ModelIdentifier, err = xmlattr.RequiredString(el, "modelIdentifier"); err != nil {
		return attrs, err
	}
	err = readBools(el,
		boolField{"needsExecutionTool", &attrs.NeedsExecutionTool},
		boolField{"canGetAndSetFMUstate", &attrs.CanGetAndSetFMUstate},
		boolField{"canSerializeFMUstate", &attrs.CanSerializeFMUstate},
		boolField{"providesDirectionalDerivative", &attrs.ProvidesDirectionalDerivative},
		boolField{"canNotUseMemoryManagementFunctions", &attrs.CanNotUseMemoryManagementFunctions},
		boolField{"canBeInstantiatedOnlyOncePerProcess", &attrs.CanBeInstantiatedOnlyOncePerProcess},
	)
	if err != nil {
		return attrs, err
	}

	for _, child := range el.ChildElements() {
		if child.Tag != elemSourceFiles {
			continue
		}
		files, err := parseSourceFiles(child)
		if err != nil {
			return attrs, fmt.Errorf("SourceFiles: %w", err)
		}
		attrs.SourceFiles = files
	}
	return attrs, nil
}

func parseCoSimulationAttributes(el *etree.Element) (fmi.CoSimulationAttributes, error) {
	fmu, err := parseFmuAttributes(el)
	if err != nil {
		return fmi.CoSimulationAttributes{}, err
	}
	attrs := fmi.CoSimulationAttributes{FmuAttributes: fmu}
	if attrs.MaxOutputDerivativeOrder, err = xmlattr.UintOr(el, "maxOutputDerivativeOrder", 0); err != nil {
		return attrs, err
	}
	err = readBools(el,
		boolField{"canInterpolateInputs", &attrs.CanInterpolateInputs},
		boolField{"canRunAsynchronuously", &attrs.CanRunAsynchronuously},
		boolField{"canHandleVariableCommunicationStepSize", &attrs.CanHandleVariableCommunicationStepSize},
	)
	return attrs, err
}

func parseModelExchangeAttributes(el *etree.Element) (fmi.ModelExchangeAttributes, error) {
	fmu, err := parseFmuAttributes(el)
	if err != nil {
		return fmi.ModelExchangeAttributes{}, err
	}
	attrs := fmi.ModelExchangeAttributes{FmuAttributes: fmu}
	err = readBools(el,
		boolField{"completedIntegratorStepNotNeeded", &attrs.CompletedIntegratorStepNotNeeded},
	)
	return attrs, err
}

func parseSourceFiles(el *etree.Element) ([]fmi.SourceFile, error) {
	files := []fmi.SourceFile{}
	for _, child := range el.ChildElements() {
		if child.Tag != elemFile {
			continue
		}
		f, err := parseFile(child)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func parseFile(el *etree.Element) (fmi.SourceFile, error) {
	name, err := xmlattr.RequiredString(el, "name")
	if err != nil {
		return fmi.SourceFile{}, err
	}
	return fmi.SourceFile{Name: name}, nil
}
