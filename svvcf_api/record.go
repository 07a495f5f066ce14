package svvcf_api

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A struct representing one output VCF record
type Record struct {
	// The chromosome of the record
	Chromosome string

	// The 1-based position of the record
	Pos int64

	// The ID of the record
	Id string

	// The reference allele of the record
	Ref string

	// The alternate allele of the record
	Alt string

	// The QUAL column
	Qual string

	// The FILTER column
	Filter string

	// The INFO tags, in output order
	Info []string

	// The FORMAT keys, in output order
	Format []string

	// The values of each sample, in the order of the FORMAT keys
	Samples [][]string
}

// Convert the record to a tab-delimited VCF line
func (r *Record) String() string {
	info := "."
	if len(r.Info) > 0 {
		info = strings.Join(r.Info, ";")
	}

	columns := []string{
		r.Chromosome,
		strconv.FormatInt(r.Pos, 10),
		r.Id,
		r.Ref,
		r.Alt,
		r.Qual,
		r.Filter,
		info,
	}
	if len(r.Format) > 0 {
		columns = append(columns, strings.Join(r.Format, ":"))
		for _, sample := range r.Samples {
			columns = append(columns, strings.Join(sample, ":"))
		}
	}
	return strings.Join(columns, "\t")
}

// One FORMAT key with a value for every sample
type SampleTag struct {
	Key    string
	Values []string
}

// An ordered list of FORMAT keys with their per-sample values
type SampleTags []SampleTag

// Append a key with its per-sample values
// Pushing a key that is already present replaces its values but keeps its position
func (tags *SampleTags) Push(key string, values []string) {
	copied := append([]string(nil), values...)
	for i := range *tags {
		if (*tags)[i].Key == key {
			(*tags)[i].Values = copied
			return
		}
	}
	*tags = append(*tags, SampleTag{Key: key, Values: copied})
}

func (tags SampleTags) Keys() []string {
	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = tag.Key
	}
	return keys
}

// Transpose the tags into one value column per sample
func (tags SampleTags) columns(sampleCount int) [][]string {
	samples := make([][]string, sampleCount)
	for s := range samples {
		samples[s] = make([]string, len(tags))
		for i, tag := range tags {
			value := "."
			if s < len(tag.Values) && tag.Values[s] != "" {
				value = tag.Values[s]
			}
			samples[s][i] = value
		}
	}
	return samples
}

// The generic text record writer the emission functions hand their output to
type RecordSink interface {
	// Write one line of the metadata header
	WriteHeaderLine(line string) error

	// Write one complete record
	WriteRecord(record *Record) error
}

// The caller model specific part of a record
type RecordStrategy interface {
	// Write the QUAL column
	WriteQuality(w io.StringWriter) error

	// Write the FILTER column
	WriteFilter(w io.StringWriter) error

	// The model specific INFO tags of the breakend record selected by isFirstOfPair
	BuildInfoTags(sv *SVCandidate, event *EventInfo, isFirstOfPair bool) ([]string, error)

	// The FORMAT keys and their per-sample values
	BuildSampleTags(sv *SVCandidate) (SampleTags, error)
}

// Build the records of one candidate: two records for a breakend pair, one otherwise
func buildSVRecords(strategy RecordStrategy, sv *SVCandidate, svId SVId, event *EventInfo, sampleCount int) ([]*Record, error) {
	var qual, filter strings.Builder
	if err := strategy.WriteQuality(&qual); err != nil {
		return nil, err
	}
	if err := strategy.WriteFilter(&filter); err != nil {
		return nil, err
	}

	sampleTags, err := strategy.BuildSampleTags(sv)
	if err != nil {
		return nil, err
	}
	format := sampleTags.Keys()
	samples := sampleTags.columns(sampleCount)

	pairs := []bool{true}
	if sv.IsBreakend() {
		pairs = append(pairs, false)
	}

	records := make([]*Record, 0, len(pairs))
	for _, isFirstOfPair := range pairs {
		record, err := baseRecord(sv, svId, event, isFirstOfPair)
		if err != nil {
			return nil, err
		}
		modelInfo, err := strategy.BuildInfoTags(sv, event, isFirstOfPair)
		if err != nil {
			return nil, err
		}
		record.Info = append(record.Info, modelInfo...)
		record.Qual = qual.String()
		record.Filter = filter.String()
		record.Format = format
		record.Samples = samples
		records = append(records, record)
	}
	return records, nil
}

// Write all records of one candidate to the sink
// Nothing is written when building any of the records fails
func writeSVCore(sink RecordSink, strategy RecordStrategy, sv *SVCandidate, svId SVId, event *EventInfo, sampleCount int) error {
	records, err := buildSVRecords(strategy, sv, svId, event, sampleCount)
	if err != nil {
		return fmt.Errorf("failed to build the record of %s: %w", svId, err)
	}
	for _, record := range records {
		if err := sink.WriteRecord(record); err != nil {
			return fmt.Errorf("failed to write the record of %s: %w", svId, err)
		}
	}
	return nil
}

// Create the record of one breakend with the columns and INFO tags shared by all caller models
func baseRecord(sv *SVCandidate, svId SVId, event *EventInfo, isFirstOfPair bool) (*Record, error) {
	local, remote := sv.Bp1, sv.Bp2
	if !isFirstOfPair {
		local, remote = sv.Bp2, sv.Bp1
	}

	record := &Record{
		Chromosome: local.Chrom,
		Pos:        local.Pos,
		Id:         string(svId),
		Ref:        "N",
		Info:       []string{"SVTYPE=" + string(sv.Type)},
	}

	switch sv.Type {
	case Breakend:
		localId, mateId := string(svId)+":0", string(svId)+":1"
		if !isFirstOfPair {
			localId, mateId = mateId, localId
		}
		record.Id = localId
		record.Alt = breakendAlt(record.Ref, local, remote)
		record.Info = append(record.Info, "MATEID="+mateId)
	case Deletion, Insertion, Duplication, Inversion:
		record.Alt = "<" + string(sv.Type) + ">"
		record.Info = append(record.Info,
			fmt.Sprintf("END=%d", sv.Bp2.Pos),
			fmt.Sprintf("SVLEN=%d", svLength(sv)),
		)
	default:
		return nil, fmt.Errorf("unsupported structural variant type '%s'", sv.Type)
	}

	if sv.IsImprecise() {
		record.Info = append(record.Info, "IMPRECISE")
	}
	if event.IsEvent() && event.Id != "" {
		record.Info = append(record.Info, "EVENT="+event.Id)
	}
	return record, nil
}

// Create the ALT of a breakend record in bracket notation
// A "-" strand puts the reference base first in the record of that breakend,
// so a "-" mate is written with ']' and a "+" mate with '['
func breakendAlt(ref string, local BreakendPos, remote BreakendPos) string {
	bracket := "["
	if remote.Strand == "-" {
		bracket = "]"
	}
	mate := fmt.Sprintf("%s%s:%d%s", bracket, remote.Chrom, remote.Pos, bracket)
	if local.Strand == "-" {
		return ref + mate
	}
	return mate + ref
}

// Get the SVLEN of a non-breakend candidate
func svLength(sv *SVCandidate) int64 {
	span := absInt64(sv.Bp2.Pos - sv.Bp1.Pos)
	switch sv.Type {
	case Deletion:
		return -span
	case Insertion:
		return sv.InsertLength
	default:
		return span
	}
}
