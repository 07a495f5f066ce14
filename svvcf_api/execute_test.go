package svvcf_api

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "candidates.yaml")
	output := filepath.Join(dir, "out.vcf")
	require.NoError(t, os.WriteFile(input, []byte(candidateDocuments), 0o644))

	err := Execute(context.Background(), zaptest.NewLogger(t), DefaultConfig(), ExecuteParams{
		Input:  input,
		Output: output,
		NoDate: true,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := recordLines(t, string(content))
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "chr1\t1000\tMantaBND:1:0:1:0:0:0:0\t"))
	assert.True(t, strings.HasPrefix(lines[1], "chr2\t5000\tMantaBND:1:0:1:0:0:0:1\t"))
	assert.Equal(t, "chr3\t100\tMantaDEL:2:0:0:0:0:0\tN\t<DEL>\t8\tMinQUAL\tSVTYPE=DEL;END=500;SVLEN=-400;IMPRECISE;EVENT=E1;BND_DEPTH=20;MATE_BND_DEPTH=22;JUNCTION_QUAL=6\tGT:FT:GQ:PL:PR\t1/1:MinGQ:3:50,3,0:0,0", lines[2])
	assert.NotContains(t, string(content), "##fileDate")
}

func TestExecuteStopsOnBadCandidate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "candidates.yaml")
	output := filepath.Join(dir, "out.vcf")
	bad := candidateDocuments + "---\nid: broken\ncandidate: {type: CNV}\nscore: {}\ndiploid: {samples: [{gt: REF}]}\n"
	require.NoError(t, os.WriteFile(input, []byte(bad), 0o644))

	err := Execute(context.Background(), zaptest.NewLogger(t), DefaultConfig(), ExecuteParams{Input: input, Output: output, NoDate: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestExecuteMissingInput(t *testing.T) {
	err := Execute(context.Background(), zaptest.NewLogger(t), DefaultConfig(), ExecuteParams{Input: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestExecuteFailsOnCandidateWithoutScores(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "candidates.yaml")
	require.NoError(t, os.WriteFile(input, []byte("candidate: {type: DEL}\n"), 0o644))

	err := Execute(context.Background(), zaptest.NewLogger(t), DefaultConfig(), ExecuteParams{Input: input, Output: filepath.Join(dir, "out.vcf"), NoDate: true})
	assert.ErrorIs(t, err, ErrMissingScore)
}
