package svvcf_api

import (
	"io"
	"strings"
)

// The filter column value of a record without active filters
const PassFilter = "PASS"

// An insertion ordered set of filter labels
type FilterSet []string

// Create a filter set from the given labels, dropping duplicates
func NewFilterSet(labels ...string) FilterSet {
	filters := FilterSet{}
	for _, label := range labels {
		filters.Add(label)
	}
	return filters
}

// Add a label to the set, a label that is already present keeps its place
func (filters *FilterSet) Add(label string) {
	if filters.Has(label) {
		return
	}
	*filters = append(*filters, label)
}

func (filters FilterSet) Has(label string) bool {
	for _, f := range filters {
		if f == label {
			return true
		}
	}
	return false
}

func (filters FilterSet) IsEmpty() bool {
	return len(filters) == 0
}

// Render the set as a VCF filter value
func (filters FilterSet) String() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = WriteFilters(filters, &sb)
	return sb.String()
}

func (filters *FilterSet) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var labels []string
	if err := unmarshal(&labels); err != nil {
		return err
	}
	*filters = NewFilterSet(labels...)
	return nil
}

// Write the filter value of a record or sample: PASS when no filter is
// active, the active labels joined by ';' otherwise
func WriteFilters(filters FilterSet, w io.StringWriter) error {
	if filters.IsEmpty() {
		_, err := w.WriteString(PassFilter)
		return err
	}
	for i, label := range filters {
		if i > 0 {
			if _, err := w.WriteString(";"); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(label); err != nil {
			return err
		}
	}
	return nil
}
