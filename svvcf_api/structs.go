package svvcf_api

// The type of a structural variant candidate
type SVType string

const (
	Breakend    SVType = "BND"
	Deletion    SVType = "DEL"
	Insertion   SVType = "INS"
	Duplication SVType = "DUP"
	Inversion   SVType = "INV"
)

// A struct representing one side of a structural variant junction
type BreakendPos struct {
	// The chromosome of the breakend
	Chrom string `yaml:"chrom"`

	// The 1-based position of the breakend
	Pos int64 `yaml:"pos"`

	// The strand of the breakend, "+" or "-" (empty is read as "+")
	// "-" puts the reference base first in the record of this breakend and
	// makes the mate record point at it with ']', "+" puts it last and uses '['
	Strand string `yaml:"strand"`
}

// A struct representing one structural variant call as a pair of breakends
type SVCandidate struct {
	// The type of the structural variant
	Type SVType `yaml:"type"`

	// The first breakend
	Bp1 BreakendPos `yaml:"bp1"`

	// The second breakend
	Bp2 BreakendPos `yaml:"bp2"`

	// The length of the inserted sequence, only used for insertions
	InsertLength int64 `yaml:"insertLength"`

	// A flag indicating that no split read evidence resolved the breakpoints
	Imprecise bool `yaml:"imprecise"`
}

// Returns true when the candidate lacks split read level breakpoint resolution
func (sv *SVCandidate) IsImprecise() bool {
	return sv.Imprecise
}

// Returns true when the candidate is written as a pair of breakend records
func (sv *SVCandidate) IsBreakend() bool {
	return sv.Type == Breakend
}

// The stable identifier of a candidate
type SVId string

// A struct grouping several candidates into one multi-adjacency event
type EventInfo struct {
	// The ID of the event
	Id string `yaml:"id"`

	// A flag indicating that the candidate is part of a multi-adjacency event
	Event bool `yaml:"isEvent"`
}

// Returns true when the candidate is part of a multi-adjacency event
func (event *EventInfo) IsEvent() bool {
	return event != nil && event.Event
}

// A struct holding the read support for one allele
type AlleleSupport struct {
	// Split reads where P(allele|read) is confident
	ConfidentSplitReadCount int `yaml:"confidentSplitReadCount"`

	// All split reads assigned to the allele
	SplitReadCount int `yaml:"splitReadCount"`

	// Spanning read pairs where P(allele|pair) is confident
	ConfidentSpanningPairCount int `yaml:"confidentSpanningPairCount"`

	// All spanning read pairs assigned to the allele
	SpanningPairCount int `yaml:"spanningPairCount"`

	// Confident split reads and pairs supporting the reference at the first breakend
	ConfidentSplitReadAndPairCountRefBp1 int `yaml:"confidentSplitReadAndPairCountRefBp1"`

	// Confident split reads and pairs supporting the reference at the second breakend
	ConfidentSplitReadAndPairCountRefBp2 int `yaml:"confidentSplitReadAndPairCountRefBp2"`
}

// A struct representing the site level evidence of a candidate
type SVScoreInfo struct {
	// The maximum read depth near the first breakend
	Bp1MaxDepth int `yaml:"bp1MaxDepth"`

	// The maximum read depth near the second breakend
	Bp2MaxDepth int `yaml:"bp2MaxDepth"`

	// The support for the reference allele
	Ref AlleleSupport `yaml:"ref"`

	// The support for the alternate allele
	Alt AlleleSupport `yaml:"alt"`
}

// The depth at the local breakend of the record
func (info *SVScoreInfo) LocalDepth(isFirstOfPair bool) int {
	if isFirstOfPair {
		return info.Bp1MaxDepth
	}
	return info.Bp2MaxDepth
}

// The depth at the mate breakend of the record
func (info *SVScoreInfo) MateDepth(isFirstOfPair bool) int {
	return info.LocalDepth(!isFirstOfPair)
}

// The reference support at the local breakend of the record
func (info *SVScoreInfo) LocalRefCount(isFirstOfPair bool) int {
	if isFirstOfPair {
		return info.Ref.ConfidentSplitReadAndPairCountRefBp1
	}
	return info.Ref.ConfidentSplitReadAndPairCountRefBp2
}

// The reference support at the mate breakend of the record
func (info *SVScoreInfo) MateRefCount(isFirstOfPair bool) int {
	return info.LocalRefCount(!isFirstOfPair)
}

// A struct representing the diploid genotype call of one sample
type SVScoreInfoDiploidSample struct {
	// The called genotype
	Gt Genotype `yaml:"gt"`

	// The genotype quality
	GtScore int `yaml:"gtScore"`

	// The phred-scaled genotype likelihoods, indexed by genotype
	PhredLoghood [GenotypeCount]int `yaml:"phredLoghood,flow"`

	// The sample level filters
	Filters FilterSet `yaml:"filters"`
}

// A struct representing the per-sample diploid calls of one candidate
type SVScoreInfoDiploid struct {
	// The QUAL of the site
	AltScore int `yaml:"altScore"`

	// The site level filters
	Filters FilterSet `yaml:"filters"`

	// The calls of each sample, in sample column order
	Samples []SVScoreInfoDiploidSample `yaml:"samples"`
}

// A struct bundling everything needed to write one candidate
type ScoredCandidate struct {
	// The stable identifier of the candidate
	Id SVId `yaml:"id"`

	// The candidate itself
	Candidate SVCandidate `yaml:"candidate"`

	// The optional event the candidate belongs to
	Event *EventInfo `yaml:"event"`

	// The site level evidence
	Score *SVScoreInfo `yaml:"score"`

	// The diploid call of the merged event
	Diploid *SVScoreInfoDiploid `yaml:"diploid"`

	// The diploid call of this junction only, defaults to Diploid when missing
	SingleJunction *SVScoreInfoDiploid `yaml:"singleJunction"`
}
