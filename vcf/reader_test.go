package vcf_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/genonet/genotype"
	"github.com/katalvlaran/genonet/vcf"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVCF = `##fileformat=VCFv4.2
##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	S1	S2	S3
1	100	rs1	A	G	50	PASS	.	GT:DP	0/0:10	0|1:12	1/1:9
1	200	.	C	T	50	PASS	.	GT	1|0	./.	0/1
2	300	.	G	A,C	50	PASS	.	DP:GT	7:0/2	8:.	9:./1
2	400	.	T	A	50	PASS	.	DP	7	8	9
`

func TestReader_Plain(t *testing.T) {
	r, err := vcf.NewReader(strings.NewReader(sampleVCF))
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2", "S3"}, r.Samples())

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "rs1", rec.ID)
	assert.Equal(t, []genotype.Call{genotype.NewCall(0, 0), genotype.NewCall(0, 1), genotype.NewCall(1, 1)}, rec.Calls)

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "1:200", rec.ID)
	assert.Equal(t, []genotype.Call{genotype.NewCall(1, 0), genotype.Missing, genotype.NewCall(0, 1)}, rec.Calls)

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, []genotype.Call{genotype.NewCall(0, 2), genotype.Missing, genotype.Missing}, rec.Calls)

	rec, err = r.Next()
	require.NoError(t, err, "FORMAT without GT yields missing calls")
	assert.Equal(t, []genotype.Call{genotype.Missing, genotype.Missing, genotype.Missing}, rec.Calls)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, r.Close())
}

func TestReader_GzipFile(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleVCF))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "calls.vcf.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	r, err := vcf.Open(path)
	require.NoError(t, err)
	defer r.Close()

	m, err := genotype.Collect(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumSamples())
	assert.Equal(t, 4, m.NumVariants())
	assert.Equal(t, genotype.NewCall(1, 0), m.At(0, 1))
}

func TestReader_NoHeader(t *testing.T) {
	_, err := vcf.NewReader(strings.NewReader("##fileformat=VCFv4.2\n"))
	assert.ErrorIs(t, err, vcf.ErrNoHeader)

	_, err = vcf.NewReader(strings.NewReader("1\t100\trs1\n"))
	assert.ErrorIs(t, err, vcf.ErrNoHeader)
}

func TestReader_MalformedLine(t *testing.T) {
	in := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\tS2\n1\t100\trs1\tA\tG\t.\t.\t.\tGT\t0/0\n"
	r, err := vcf.NewReader(strings.NewReader(in))
	require.NoError(t, err)

	_, err = r.Next()
	assert.ErrorIs(t, err, vcf.ErrMalformedLine)
}

func TestReader_MalformedGenotype(t *testing.T) {
	for _, gt := range []string{"x/1", "-1/0", "2147483648/0", "0|99999999999"} {
		t.Run(gt, func(t *testing.T) {
			in := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\n1\t100\trs1\tA\tG\t.\t.\t.\tGT\t" + gt + "\n"
			r, err := vcf.NewReader(strings.NewReader(in))
			require.NoError(t, err)

			_, err = r.Next()
			require.True(t, errors.Is(err, vcf.ErrMalformedGenotype), "got %v", err)
			assert.Contains(t, err.Error(), `"S1"`)
		})
	}
}

func TestReader_LargestAlleleIndex(t *testing.T) {
	in := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\n1\t100\trs1\tA\tG\t.\t.\t.\tGT\t2147483647/0\n"
	r, err := vcf.NewReader(strings.NewReader(in))
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, genotype.NewCall(math.MaxInt32, 0), rec.Calls[0])
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := vcf.Open(filepath.Join(t.TempDir(), "absent.vcf"))
	assert.Error(t, err)
}
