package svvcf_api

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGenotype = errors.New("unknown genotype")

// The diploid genotype classes, also used as index into the likelihood array
type Genotype int

const (
	GenotypeRef Genotype = iota
	GenotypeHet
	GenotypeHom

	// The number of genotype classes
	GenotypeCount = 3
)

// Returns the VCF genotype label, or an empty string for an unrecognized genotype
func (gt Genotype) Label() string {
	switch gt {
	case GenotypeRef:
		return "0/0"
	case GenotypeHet:
		return "0/1"
	case GenotypeHom:
		return "1/1"
	default:
		return ""
	}
}

func (gt Genotype) String() string {
	switch gt {
	case GenotypeRef:
		return "REF"
	case GenotypeHet:
		return "HET"
	case GenotypeHom:
		return "HOM"
	default:
		return fmt.Sprintf("Genotype(%d)", int(gt))
	}
}

// Parse a genotype class name (REF, HET or HOM)
func ParseGenotype(name string) (Genotype, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "REF":
		return GenotypeRef, nil
	case "HET":
		return GenotypeHet, nil
	case "HOM":
		return GenotypeHom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGenotype, name)
}

func (gt *Genotype) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseGenotype(name)
	if err != nil {
		return err
	}
	*gt = parsed
	return nil
}

func (gt Genotype) MarshalYAML() (interface{}, error) {
	return gt.String(), nil
}
