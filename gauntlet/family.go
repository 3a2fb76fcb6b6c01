package gauntlet

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// A Family is a group of operators that share a signature rule and an output directory in the gauntlet.
type Family int

const (
	Compares Family = iota
	DataOps
	FloatMath
	IntMath
	Conversions
	TruncSats
)

var familyInfo = [...]struct {
	name  string
	theme string
}{
	Compares:    {"compares", "Compares"},
	DataOps:     {"dataops", "DataOps"},
	FloatMath:   {"floatmath", "FloatMath"},
	IntMath:     {"intmath", "IntMath"},
	Conversions: {"conversions", "Conversions"},
	TruncSats:   {"truncsats", "TruncSats"},
}

// Families returns every family in generation order.
func Families() []Family {
	return []Family{Compares, DataOps, FloatMath, IntMath, Conversions, TruncSats}
}

func (f Family) valid() bool {
	return f >= 0 && int(f) < len(familyInfo)
}

func (f Family) String() string {
	if !f.valid() {
		return fmt.Sprintf("<unknown family %d>", int(f))
	}
	return familyInfo[f].name
}

// Theme returns the name of the gauntlet directory that holds the family's tests.
func (f Family) Theme() string {
	if !f.valid() {
		return ""
	}
	return familyInfo[f].theme
}

// Catalogue returns the family's entries in catalogue order.
func (f Family) Catalogue() []Entry {
	switch f {
	case Compares:
		return concat(compareUnaryCatalogue, compareBinaryCatalogue)
	case DataOps:
		return concat(loadCatalogue, storeCatalogue)
	case FloatMath:
		return concat(floatUnaryCatalogue, floatBinaryCatalogue)
	case IntMath:
		return concat(intUnaryCatalogue, intBinaryCatalogue)
	case Conversions:
		return concat(conversionCatalogue, selfExtendCatalogue)
	case TruncSats:
		return concat(truncSatCatalogue)
	default:
		return nil
	}
}

func concat(catalogues ...[]Entry) []Entry {
	var entries []Entry
	for _, c := range catalogues {
		entries = append(entries, c...)
	}
	return entries
}

// ParseFamily accepts either a family's name or its theme, ignoring case.
func ParseFamily(s string) (Family, error) {
	s = strings.TrimSpace(s)
	for _, f := range Families() {
		if strings.EqualFold(s, f.String()) || strings.EqualFold(s, f.Theme()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown family '%v'", s)
}

// FamilySet is a pflag.Value that accumulates families. An empty set selects every family.
type FamilySet []Family

var _ pflag.Value = (*FamilySet)(nil)

func (s *FamilySet) String() string {
	names := make([]string, len(*s))
	for i, f := range *s {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}

func (s *FamilySet) Set(v string) error {
	for _, name := range strings.Split(v, ",") {
		f, err := ParseFamily(name)
		if err != nil {
			return err
		}
		if !s.contains(f) {
			*s = append(*s, f)
		}
	}
	return nil
}

func (s *FamilySet) Type() string {
	return "family"
}

func (s *FamilySet) contains(f Family) bool {
	for _, g := range *s {
		if g == f {
			return true
		}
	}
	return false
}

// Families returns the selected families, or every family if none were selected.
func (s FamilySet) Families() []Family {
	if len(s) == 0 {
		return Families()
	}
	return []Family(s)
}
