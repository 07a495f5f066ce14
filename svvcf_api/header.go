package svvcf_api

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A struct representing a header line in the VCF file with its ID and Description
type HeaderLineIdDescription struct {
	// The ID of the header line
	Id string

	// The description of the header line
	Description string
}

// A struct representing a header line in the VCF file with its ID, Number, Type and Description
type HeaderLineIdNumberTypeDescription struct {
	// The ID of the header line
	Id string

	// The number of values in the header line
	// Can be any integer, "A", "G", "R" or "."
	Number string

	// The type of the header line
	// Can be "Integer", "Float", "Flag", "String" or "Character"
	Type string

	// The description of the header line
	Description string
}

// A struct representing a header line in the VCF file with its ID and Length
type HeaderLineIdLength struct {
	// The ID of the header line
	Id string `yaml:"id"`

	// The length of the contig
	Length int64 `yaml:"length"`
}

// Render an INFO or FORMAT declaration, kind is either "INFO" or "FORMAT"
func (line HeaderLineIdNumberTypeDescription) render(kind string) string {
	lineType := cases.Title(language.English, cases.Compact).String(strings.ToLower(line.Type))
	return fmt.Sprintf("##%s=<ID=%s,Number=%s,Type=%s,Description=\"%s\">", kind, line.Id, line.Number, lineType, line.Description)
}

// Render an ALT or FILTER declaration
func (line HeaderLineIdDescription) render(kind string) string {
	return fmt.Sprintf("##%s=<ID=%s,Description=\"%s\">", kind, line.Id, line.Description)
}

// The INFO fields written for every candidate regardless of the caller model
func baseInfoHeader() []HeaderLineIdNumberTypeDescription {
	return []HeaderLineIdNumberTypeDescription{
		{"IMPRECISE", "0", "Flag", "Imprecise structural variation"},
		{"SVTYPE", "1", "String", "Type of structural variant"},
		{"SVLEN", ".", "Integer", "Difference in length between REF and ALT alleles"},
		{"END", "1", "Integer", "End position of the variant described in this record"},
		{"MATEID", ".", "String", "ID of mate breakend"},
		{"EVENT", "1", "String", "ID of event associated to breakend"},
	}
}

func altHeader() []HeaderLineIdDescription {
	return []HeaderLineIdDescription{
		{string(Deletion), "Deletion"},
		{string(Insertion), "Insertion"},
		{string(Duplication), "Duplication"},
		{string(Inversion), "Inversion"},
	}
}

// The INFO fields produced by the diploid info builder
func diploidInfoHeader(opts WriterOptions) []HeaderLineIdNumberTypeDescription {
	lines := []HeaderLineIdNumberTypeDescription{
		{"BND_DEPTH", "1", "Integer", "Read depth at local breakend"},
		{"MATE_BND_DEPTH", "1", "Integer", "Read depth at mate breakend"},
		{"JUNCTION_QUAL", "1", "Integer", "If the SV junction is part of an EVENT (ie. a multi-adjacency variant), this field provides the QUAL value for the adjacency in question only"},
	}
	if opts.IsRNA {
		lines = append(lines,
			HeaderLineIdNumberTypeDescription{"REF_COUNT", "1", "Integer", "For RNA fusions, the number of reads supporting the reference allele at this breakend"},
			HeaderLineIdNumberTypeDescription{"MATE_REF_COUNT", "1", "Integer", "For RNA fusions, the number of reads supporting the reference allele at the other breakend"},
		)
	}
	return lines
}

// The FORMAT fields produced by the diploid sample builder
func diploidFormatHeader(opts WriterOptions) []HeaderLineIdNumberTypeDescription {
	lines := []HeaderLineIdNumberTypeDescription{
		{"GT", "1", "String", "Genotype"},
		{"FT", "1", "String", "Sample filter, 'PASS' indicates that all filters have passed for this sample"},
		{"GQ", "1", "Float", "Genotype Quality"},
		{"PL", "G", "Integer", "Normalized, Phred-scaled likelihoods for genotypes as defined in the VCF specification"},
		{"PR", ".", "Integer", "Spanning paired-read support for the ref and alt alleles in the order listed"},
		{"SR", ".", "Integer", "Split reads for the ref and alt alleles in the order listed, for reads where P(allele|read)>0.999"},
	}
	if opts.IsRNA {
		lines = append(lines,
			HeaderLineIdNumberTypeDescription{"FS", "2", "Integer", "For RNA variants split reads supporting the ref and alt alleles in the order listed"},
			HeaderLineIdNumberTypeDescription{"FP", "2", "Integer", "For RNA variants spanning paired reads supporting the ref and alt alleles in the order listed"},
		)
	}
	return lines
}

// The FILTER declarations of the diploid model, thresholds are taken from the filter config
func diploidFilterHeader(opts WriterOptions, filters FilterConfig) []HeaderLineIdDescription {
	lines := []HeaderLineIdDescription{}
	if opts.IsMaxDepthFilter {
		lines = append(lines, HeaderLineIdDescription{
			filters.MaxDepthFilterLabel,
			fmt.Sprintf("Sample site depth is greater than %sx the mean chromosome depth near one or both variant breakends", floatToString(filters.MaxDepthFactor)),
		})
	}
	lines = append(lines,
		HeaderLineIdDescription{
			filters.MaxMQ0FracLabel,
			fmt.Sprintf("For a small variant (<1000 bases), the fraction of reads with MAPQ0 around either breakend exceeds %s", floatToString(filters.MaxMQ0Frac)),
		},
		HeaderLineIdDescription{
			filters.NoPairSupportLabel,
			"For variants significantly larger than the paired read fragment size, no paired reads support the alternate allele.",
		},
		HeaderLineIdDescription{
			filters.MinAltFilterLabel,
			fmt.Sprintf("QUAL score is less than %d", filters.MinPassAltScore),
		},
		HeaderLineIdDescription{
			filters.MinGTFilterLabel,
			fmt.Sprintf("GQ score is less than %d (applied at individual sample level)", filters.MinPassGTScore),
		},
	)
	if opts.IsRNA {
		lines = append(lines, HeaderLineIdDescription{
			filters.RnaFilterLabel,
			"RNA fusion variants without split read and split pair support",
		})
	}
	return lines
}

// Returns all header lines of the output VCF, including the column header
// A zero date leaves out the ##fileDate line
func headerLines(config *Config, opts WriterOptions, date time.Time) []string {
	lines := []string{"##fileformat=VCFv4.1"}

	if !date.IsZero() {
		lines = append(lines, fmt.Sprintf("##fileDate=%d%02d%02d", date.Year(), date.Month(), date.Day()))
	}
	if config.Source != "" {
		lines = append(lines, "##source="+config.Source)
	}
	if config.Reference != "" {
		lines = append(lines, "##reference="+config.Reference)
	}
	for _, contig := range config.Contigs {
		lines = append(lines, fmt.Sprintf("##contig=<ID=%s,length=%d>", contig.Id, contig.Length))
	}

	for _, info := range baseInfoHeader() {
		lines = append(lines, info.render("INFO"))
	}
	for _, info := range diploidInfoHeader(opts) {
		lines = append(lines, info.render("INFO"))
	}
	for _, alt := range altHeader() {
		lines = append(lines, alt.render("ALT"))
	}
	for _, format := range diploidFormatHeader(opts) {
		lines = append(lines, format.render("FORMAT"))
	}
	for _, filter := range diploidFilterHeader(opts, config.Filters) {
		lines = append(lines, filter.render("FILTER"))
	}

	columnHeaders := []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT"}
	columnHeaders = append(columnHeaders, config.Samples...)
	lines = append(lines, strings.Join(columnHeaders, "\t"))
	return lines
}
