package svvcf_api

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"gopkg.in/yaml.v2"
)

// Reads scored candidates from a stream of YAML documents
type CandidateReader struct {
	decoder *yaml.Decoder
	closers []io.Closer
	count   int
}

// Create a reader on an already opened stream, the caller keeps ownership of r
func NewCandidateReader(r io.Reader) *CandidateReader {
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	return &CandidateReader{decoder: decoder}
}

// Open the candidate file, files ending in .gz are read as BGZF
func OpenCandidates(path string) (*CandidateReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the input file: %w", err)
	}

	if !strings.HasSuffix(path, ".gz") {
		reader := NewCandidateReader(file)
		reader.closers = []io.Closer{file}
		return reader, nil
	}

	bgReader, err := bgzf.NewReader(file, 1)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to open the input file as BGZF: %w", err)
	}
	reader := NewCandidateReader(bgReader)
	reader.closers = []io.Closer{bgReader, file}
	return reader, nil
}

// Read the next candidate, returns io.EOF when the stream is exhausted
func (reader *CandidateReader) Next() (*ScoredCandidate, error) {
	for {
		candidate := &ScoredCandidate{}
		err := reader.decoder.Decode(candidate)
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		reader.count++
		if err != nil {
			return nil, fmt.Errorf("failed to parse candidate document %d: %w", reader.count, err)
		}

		// Empty documents
		if *candidate == (ScoredCandidate{}) {
			continue
		}
		if candidate.Event.IsEvent() && candidate.Event.Id == "" {
			return nil, fmt.Errorf("candidate document %d is an event member without an event id", reader.count)
		}

		if candidate.SingleJunction == nil {
			candidate.SingleJunction = candidate.Diploid
		}
		return candidate, nil
	}
}

func (reader *CandidateReader) Close() error {
	var err error
	for _, closer := range reader.closers {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
