package svvcf_api

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

var ErrMissingScore = errors.New("missing score")

// The static configuration flags of a writer
type WriterOptions struct {
	// Write the RNA specific fields and filters
	IsRNA bool

	// Declare the maximum depth filter in the header
	IsMaxDepthFilter bool
}

// Writes diploid structural variant calls to a record sink
// The writer keeps no state between calls, but the sink it wraps usually does:
// use one writer per output stream and feed it from a single goroutine
type DiploidWriter struct {
	sink   RecordSink
	config *Config
	opts   WriterOptions
}

func NewDiploidWriter(sink RecordSink, config *Config, opts WriterOptions) *DiploidWriter {
	return &DiploidWriter{
		sink:   sink,
		config: config,
		opts:   opts,
	}
}

// Write the header of the output VCF, a zero date leaves out the ##fileDate line
func (w *DiploidWriter) WriteHeader(date time.Time) error {
	for _, line := range headerLines(w.config, w.opts, date) {
		if err := w.sink.WriteHeaderLine(line); err != nil {
			return fmt.Errorf("failed to write the header: %w", err)
		}
	}
	return nil
}

// Write the records of one candidate
// singleJunction holds the score of this junction alone and is only required for event members
func (w *DiploidWriter) WriteSV(
	sv *SVCandidate,
	svId SVId,
	baseInfo *SVScoreInfo,
	diploidInfo *SVScoreInfoDiploid,
	event *EventInfo,
	singleJunctionDiploidInfo *SVScoreInfoDiploid,
) error {
	if sv == nil {
		return fmt.Errorf("%w: no candidate given for %s", ErrMissingScore, svId)
	}
	if baseInfo == nil || diploidInfo == nil {
		return fmt.Errorf("%w: site or diploid score of %s", ErrMissingScore, svId)
	}
	if event.IsEvent() && singleJunctionDiploidInfo == nil {
		return fmt.Errorf("%w: single junction score of event member %s", ErrMissingScore, svId)
	}
	if len(diploidInfo.Samples) != len(w.config.Samples) {
		return fmt.Errorf("candidate %s has %d sample calls, expected %d", svId, len(diploidInfo.Samples), len(w.config.Samples))
	}

	strategy := &diploidRecord{
		isRNA:          w.opts.IsRNA,
		base:           baseInfo,
		diploid:        diploidInfo,
		singleJunction: singleJunctionDiploidInfo,
	}
	return writeSVCore(w.sink, strategy, sv, svId, event, len(w.config.Samples))
}

// The diploid caller model of one candidate
type diploidRecord struct {
	isRNA          bool
	base           *SVScoreInfo
	diploid        *SVScoreInfoDiploid
	singleJunction *SVScoreInfoDiploid
}

func (r *diploidRecord) WriteQuality(w io.StringWriter) error {
	_, err := w.WriteString(strconv.Itoa(r.diploid.AltScore))
	return err
}

func (r *diploidRecord) WriteFilter(w io.StringWriter) error {
	return WriteFilters(r.diploid.Filters, w)
}

func (r *diploidRecord) BuildInfoTags(sv *SVCandidate, event *EventInfo, isFirstOfPair bool) ([]string, error) {
	return diploidInfoTags(r.base, event, r.singleJunction, isFirstOfPair, r.isRNA)
}

func (r *diploidRecord) BuildSampleTags(sv *SVCandidate) (SampleTags, error) {
	return diploidSampleTags(sv, r.base, r.diploid, r.isRNA), nil
}

// Build the site level tags of the diploid model
// isFirstOfPair selects which breakend is local, the other one becomes the mate
func diploidInfoTags(base *SVScoreInfo, event *EventInfo, singleJunction *SVScoreInfoDiploid, isFirstOfPair bool, isRNA bool) ([]string, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: site score", ErrMissingScore)
	}

	tags := []string{
		fmt.Sprintf("BND_DEPTH=%d", base.LocalDepth(isFirstOfPair)),
		fmt.Sprintf("MATE_BND_DEPTH=%d", base.MateDepth(isFirstOfPair)),
	}

	if event.IsEvent() {
		if singleJunction == nil {
			return nil, fmt.Errorf("%w: single junction score", ErrMissingScore)
		}
		tags = append(tags, fmt.Sprintf("JUNCTION_QUAL=%d", singleJunction.AltScore))
	}

	if isRNA {
		tags = append(tags,
			fmt.Sprintf("REF_COUNT=%d", base.LocalRefCount(isFirstOfPair)),
			fmt.Sprintf("MATE_REF_COUNT=%d", base.MateRefCount(isFirstOfPair)),
		)
	}
	return tags, nil
}

// Build the FORMAT keys and values of every sample of the diploid model
// Imprecise candidates stop after PR for all samples
func diploidSampleTags(sv *SVCandidate, base *SVScoreInfo, diploid *SVScoreInfoDiploid, isRNA bool) SampleTags {
	sampleCount := len(diploid.Samples)
	tags := SampleTags{}

	// The support counts are site level and shared by all samples
	shared := func(value string) []string {
		values := make([]string, sampleCount)
		for i := range values {
			values[i] = value
		}
		return values
	}

	gt := make([]string, sampleCount)
	ft := make([]string, sampleCount)
	gq := make([]string, sampleCount)
	pl := make([]string, sampleCount)
	for i := range diploid.Samples {
		sample := &diploid.Samples[i]
		gt[i] = sample.Gt.Label()
		ft[i] = sample.Filters.String()
		gq[i] = strconv.Itoa(sample.GtScore)
		pl[i] = joinInts(
			sample.PhredLoghood[GenotypeRef],
			sample.PhredLoghood[GenotypeHet],
			sample.PhredLoghood[GenotypeHom],
		)
	}
	tags.Push("GT", gt)
	tags.Push("FT", ft)
	tags.Push("GQ", gq)
	tags.Push("PL", pl)
	tags.Push("PR", shared(joinInts(base.Ref.ConfidentSpanningPairCount, base.Alt.ConfidentSpanningPairCount)))

	if sv.IsImprecise() {
		return tags
	}

	tags.Push("SR", shared(joinInts(base.Ref.ConfidentSplitReadCount, base.Alt.ConfidentSplitReadCount)))
	if isRNA {
		tags.Push("FS", shared(joinInts(base.Ref.SplitReadCount, base.Alt.SplitReadCount)))
		tags.Push("FP", shared(joinInts(base.Ref.SpanningPairCount, base.Alt.SpanningPairCount)))
	}
	return tags
}
