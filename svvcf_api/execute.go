package svvcf_api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// The inputs of one conversion run
type ExecuteParams struct {
	// The candidate file
	Input string

	// The output VCF, stdout when empty
	Output string

	// The writer flags
	Options WriterOptions

	// Leave out the ##fileDate header line
	NoDate bool
}

// Read all candidates from the input and write them as VCF records to the output
// Candidates are decoded on a separate goroutine and written by a single consumer
func Execute(ctx context.Context, logger *zap.Logger, config *Config, params ExecuteParams) error {
	reader, err := OpenCandidates(params.Input)
	if err != nil {
		return err
	}
	defer reader.Close()

	sink, err := OpenSink(params.Output)
	if err != nil {
		return err
	}

	output := params.Output
	if output == "" {
		output = "stdout"
	}
	logger.Info("writing structural variants",
		zap.String("input", params.Input),
		zap.String("output", output),
		zap.Bool("rna", params.Options.IsRNA),
		zap.Bool("maxDepthFilter", params.Options.IsMaxDepthFilter),
	)

	writer := NewDiploidWriter(sink, config, params.Options)
	date := time.Now()
	if params.NoDate {
		date = time.Time{}
	}

	written, err := run(ctx, logger, reader, writer, date)
	if cerr := sink.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close the output: %w", cerr)
	}
	if err != nil {
		return err
	}

	logger.Info("finished writing structural variants", zap.Int("candidates", written))
	return nil
}

func run(ctx context.Context, logger *zap.Logger, reader *CandidateReader, writer *DiploidWriter, date time.Time) (int, error) {
	if err := writer.WriteHeader(date); err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	candidates := make(chan *ScoredCandidate, 64)

	g.Go(func() error {
		defer close(candidates)
		for {
			candidate, err := reader.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case candidates <- candidate:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	written := 0
	g.Go(func() error {
		for candidate := range candidates {
			logger.Debug("writing candidate",
				zap.String("id", string(candidate.Id)),
				zap.String("type", string(candidate.Candidate.Type)),
				zap.Bool("imprecise", candidate.Candidate.IsImprecise()),
			)
			err := writer.WriteSV(
				&candidate.Candidate,
				candidate.Id,
				candidate.Score,
				candidate.Diploid,
				candidate.Event,
				candidate.SingleJunction,
			)
			if err != nil {
				return err
			}
			written++
		}
		return nil
	})

	err := g.Wait()
	return written, err
}
