package svvcf_api

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A sink keeping everything in memory
type memorySink struct {
	header  []string
	records []*Record
	fail    error
}

func (sink *memorySink) WriteHeaderLine(line string) error {
	sink.header = append(sink.header, line)
	return nil
}

func (sink *memorySink) WriteRecord(record *Record) error {
	if sink.fail != nil {
		return sink.fail
	}
	sink.records = append(sink.records, record)
	return nil
}

func recordLines(t *testing.T, out string) []string {
	t.Helper()
	lines := []string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestWriteSVBreakendPairDNA(t *testing.T) {
	var buf bytes.Buffer
	sink := NewVcfSink(&buf)
	writer := NewDiploidWriter(sink, DefaultConfig(), WriterOptions{})

	require.NoError(t, writer.WriteHeader(time.Time{}))
	require.NoError(t, writer.WriteSV(exampleCandidate(), "sv1", exampleScore(), exampleDiploid(), nil, exampleDiploid()))
	require.NoError(t, sink.Close())

	lines := recordLines(t, buf.String())
	require.Len(t, lines, 2)
	assert.Equal(t, "chr1\t1000\tsv1:0\tN\tN[chr2:5000[\t45\tPASS\tSVTYPE=BND;MATEID=sv1:1;BND_DEPTH=12;MATE_BND_DEPTH=5\tGT:FT:GQ:PL:PR:SR\t0/1:PASS:30:30,0,45:2,7:3,9", lines[0])
	assert.Equal(t, "chr2\t5000\tsv1:1\tN\t]chr1:1000]N\t45\tPASS\tSVTYPE=BND;MATEID=sv1:0;BND_DEPTH=5;MATE_BND_DEPTH=12\tGT:FT:GQ:PL:PR:SR\t0/1:PASS:30:30,0,45:2,7:3,9", lines[1])
}

func TestWriteSVEventMemberRNA(t *testing.T) {
	sink := &memorySink{}
	writer := NewDiploidWriter(sink, DefaultConfig(), WriterOptions{IsRNA: true})

	merged := exampleDiploid()
	merged.Filters = NewFilterSet("MinQUAL")
	junction := &SVScoreInfoDiploid{AltScore: 12}
	event := &EventInfo{Id: "E1", Event: true}

	require.NoError(t, writer.WriteSV(exampleCandidate(), "sv9", exampleScore(), merged, event, junction))
	require.Len(t, sink.records, 2)

	first := sink.records[0]
	assert.Equal(t, "45", first.Qual)
	assert.Equal(t, "MinQUAL", first.Filter)
	assert.Equal(t, []string{"SVTYPE=BND", "MATEID=sv9:1", "EVENT=E1", "BND_DEPTH=12", "MATE_BND_DEPTH=5", "JUNCTION_QUAL=12", "REF_COUNT=8", "MATE_REF_COUNT=1"}, first.Info)
	assert.Equal(t, []string{"GT", "FT", "GQ", "PL", "PR", "SR", "FS", "FP"}, first.Format)
	assert.Equal(t, [][]string{{"0/1", "PASS", "30", "30,0,45", "2,7", "3,9", "4,10", "6,11"}}, first.Samples)
}

func TestWriteSVImpreciseRNA(t *testing.T) {
	sink := &memorySink{}
	writer := NewDiploidWriter(sink, DefaultConfig(), WriterOptions{IsRNA: true})

	sv := exampleCandidate()
	sv.Imprecise = true
	require.NoError(t, writer.WriteSV(sv, "sv2", exampleScore(), exampleDiploid(), nil, nil))
	for _, record := range sink.records {
		assert.Equal(t, []string{"GT", "FT", "GQ", "PL", "PR"}, record.Format)
	}
}

func TestWriteSVMissingScores(t *testing.T) {
	sink := &memorySink{}
	writer := NewDiploidWriter(sink, DefaultConfig(), WriterOptions{})

	err := writer.WriteSV(exampleCandidate(), "sv1", nil, exampleDiploid(), nil, nil)
	assert.ErrorIs(t, err, ErrMissingScore)

	err = writer.WriteSV(exampleCandidate(), "sv1", exampleScore(), nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingScore)

	err = writer.WriteSV(exampleCandidate(), "sv1", exampleScore(), exampleDiploid(), &EventInfo{Event: true}, nil)
	assert.ErrorIs(t, err, ErrMissingScore)

	assert.Empty(t, sink.records)

	// A failed call leaves nothing behind for the next one
	require.NoError(t, writer.WriteSV(exampleCandidate(), "sv1", exampleScore(), exampleDiploid(), nil, nil))
	assert.Len(t, sink.records, 2)
}

func TestWriteSVSampleCountMismatch(t *testing.T) {
	config := DefaultConfig()
	config.Samples = []string{"a", "b"}
	sink := &memorySink{}
	writer := NewDiploidWriter(sink, config, WriterOptions{})

	err := writer.WriteSV(exampleCandidate(), "sv1", exampleScore(), exampleDiploid(), nil, nil)
	assert.Error(t, err)
	assert.Empty(t, sink.records)
}

func TestWriteSVNoPartialRecord(t *testing.T) {
	sink := &memorySink{}
	writer := NewDiploidWriter(sink, DefaultConfig(), WriterOptions{})

	sv := exampleCandidate()
	sv.Type = "CNV"
	err := writer.WriteSV(sv, "bad", exampleScore(), exampleDiploid(), nil, nil)
	assert.Error(t, err)
	assert.Empty(t, sink.records)
}

func TestWriteSVSinkError(t *testing.T) {
	failure := errors.New("disk full")
	sink := &memorySink{fail: failure}
	writer := NewDiploidWriter(sink, DefaultConfig(), WriterOptions{})

	err := writer.WriteSV(exampleCandidate(), "sv1", exampleScore(), exampleDiploid(), nil, nil)
	assert.ErrorIs(t, err, failure)
}

func TestWriteHeaderToSink(t *testing.T) {
	sink := &memorySink{}
	writer := NewDiploidWriter(sink, DefaultConfig(), WriterOptions{IsMaxDepthFilter: true})

	require.NoError(t, writer.WriteHeader(time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "##fileDate=20231201", sink.header[1])
	assert.Equal(t, headerLines(DefaultConfig(), WriterOptions{IsMaxDepthFilter: true}, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)), sink.header)
}
