package svvcf_api

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
)

// A RecordSink writing VCF lines to a stream
type VcfSink struct {
	out     *bufio.Writer
	closers []io.Closer
}

// Create a sink on top of an already opened writer, the caller keeps ownership of w
func NewVcfSink(w io.Writer) *VcfSink {
	return &VcfSink{out: bufio.NewWriter(w)}
}

// Open a sink on the given path, stdout is used when the path is empty
// Paths ending in .gz are BGZF compressed
func OpenSink(path string) (*VcfSink, error) {
	if path == "" {
		return NewVcfSink(os.Stdout), nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create the output file: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		sink := NewVcfSink(file)
		sink.closers = []io.Closer{file}
		return sink, nil
	}

	bgWriter := bgzf.NewWriter(file, 1)
	sink := NewVcfSink(bgWriter)
	sink.closers = []io.Closer{bgWriter, file}
	return sink, nil
}

func (sink *VcfSink) WriteHeaderLine(line string) error {
	return sink.writeLine(line)
}

func (sink *VcfSink) WriteRecord(record *Record) error {
	return sink.writeLine(record.String())
}

// Write a line to the output
func (sink *VcfSink) writeLine(line string) error {
	_, err := sink.out.WriteString(line + "\n")
	return err
}

// Flush the buffered lines and close the underlying files
func (sink *VcfSink) Close() error {
	err := sink.out.Flush()
	for _, closer := range sink.closers {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
