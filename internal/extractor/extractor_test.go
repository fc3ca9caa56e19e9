package extractor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jmeterLog = `timeStamp,elapsed,label,responseCode,responseMessage,failureMessage,bytes,grpThreads,allThreads,URL,Latency,Hostname
1384443192680,103,Get,400,Bad Request,"Test failed: code expected to equal /

****** received  : [[[4]]]00

****** comparison: [[[2]]]00

/",583,2,2,http://www-a.yell.com/autocomplete/autocomplete.do,102,examine
1384443192790,12,Get,java.net.URISyntaxException: Illegal character in query,,,0,2,2,http://www-a.yell.com/search?q=a b,0,examine
1384443192800,99,Get,400,Bad Request,,583,2,2,http://www-a.yell.com/autocomplete/autocomplete.do,101,examine
1384443192810,88,Get,500,Internal Server Error,,100,2,2,http://www-a.yell.com/other,80,examine
`

func newTestExtractor(cfg config.ExtractorConfig) *Extractor {
	return NewExtractor(zerolog.Nop(), cfg)
}

func TestExtractor_Extract(t *testing.T) {
	result, err := newTestExtractor(config.NewDefaultExtractorConfig()).Extract(context.Background(), strings.NewReader(jmeterLog))
	require.NoError(t, err)

	assert.Equal(t, Columns{ResponseCode: 3, URL: 9}, result.Columns)
	assert.Equal(t, 4, result.RowsRead)
	assert.Equal(t, 0, result.RowsSkipped)
	assert.Equal(t, []string{"400", "500", "Illegal character in query"}, result.Groups.Labels())
	assert.Equal(t, []string{"http://www-a.yell.com/autocomplete/autocomplete.do"}, result.Groups.URLs("400"))
	assert.Equal(t, []string{"http://www-a.yell.com/search?q=a b"}, result.Groups.URLs("Illegal character in query"))
	assert.Equal(t, 3, result.Groups.TotalURLs())
}

func TestExtractor_HeaderOnly(t *testing.T) {
	result, err := newTestExtractor(config.NewDefaultExtractorConfig()).Extract(context.Background(), strings.NewReader("responseCode,URL\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Groups.Len())
	assert.Equal(t, 0, result.RowsRead)
}

func TestExtractor_EmptyInput(t *testing.T) {
	_, err := newTestExtractor(config.NewDefaultExtractorConfig()).Extract(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestExtractor_MissingColumns(t *testing.T) {
	e := newTestExtractor(config.NewDefaultExtractorConfig())

	_, err := e.Extract(context.Background(), strings.NewReader("label,URL\nGet,http://x\n"))
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ResponseCodeColumn, missing.Column)

	_, err = e.Extract(context.Background(), strings.NewReader("label,responseCode\nGet,400\n"))
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, URLColumn, missing.Column)
}

func TestExtractor_SkipsMalformedRows(t *testing.T) {
	input := "responseCode,URL\n400,http://a\n,http://b\nBad Request,http://c\n500\n404,http://d\n"

	result, err := newTestExtractor(config.NewDefaultExtractorConfig()).Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 5, result.RowsRead)
	assert.Equal(t, 3, result.RowsSkipped)
	assert.Equal(t, []string{"400", "404"}, result.Groups.Labels())
}

func TestExtractor_StrictAbortsWithLine(t *testing.T) {
	input := "responseCode,URL\n400,http://a\n,http://b\n404,http://d\n"

	_, err := newTestExtractor(config.ExtractorConfig{Strict: true}).Extract(context.Background(), strings.NewReader(input))

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 3, rowErr.Line)
	assert.ErrorIs(t, err, ErrEmptyResponseCode)
	assert.ErrorIs(t, err, common.ErrMalformedRow)
}

func TestExtractor_StrictLineAfterMultilineCell(t *testing.T) {
	input := "responseCode,note,URL\n400,\"a\nb\nc\",http://a\nnope,x,http://b\n"

	_, err := newTestExtractor(config.ExtractorConfig{Strict: true}).Extract(context.Background(), strings.NewReader(input))

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 5, rowErr.Line)
	assert.ErrorIs(t, err, ErrUnclassifiable)
}

func TestExtractor_NormalizeStripsConfiguredParams(t *testing.T) {
	input := "responseCode,URL\n" +
		"400,http://example.com/a?q=1&utm_source=mail\n" +
		"400,http://example.com/a?q=1&SID=42\n" +
		"400,http://example.com/a?q=1\n"

	cfg := config.ExtractorConfig{
		NormalizeURLs:       true,
		StripTrackingParams: true,
		StripParams:         []string{"sid"},
	}
	result, err := newTestExtractor(cfg).Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"http://example.com/a?q=1"}, result.Groups.URLs("400"))

	cfg.StripTrackingParams = false
	cfg.StripParams = nil
	result, err = newTestExtractor(cfg).Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, result.Groups.URLs("400"), 3)
}

func TestExtractor_NormalizeURLs(t *testing.T) {
	input := "responseCode,URL\n400,HTTP://Example.com/a#top\n400,http://example.com/a\n400,://\n"

	result, err := newTestExtractor(config.ExtractorConfig{NormalizeURLs: true}).Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"://", "http://example.com/a"}, result.Groups.URLs("400"))
}

func TestExtractor_ReadErrorPassesThrough(t *testing.T) {
	readErr := errors.New("disk gone")

	_, err := newTestExtractor(config.NewDefaultExtractorConfig()).Extract(context.Background(), iotest.ErrReader(readErr))
	assert.ErrorIs(t, err, readErr)

	var rowErr *RowError
	assert.False(t, errors.As(err, &rowErr))
}

func TestExtractor_ExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.jtl")
	require.NoError(t, os.WriteFile(path, []byte(jmeterLog), 0o644))

	e := newTestExtractor(config.NewDefaultExtractorConfig())

	result, err := e.ExtractFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Groups.Len())

	_, err = e.ExtractFile(context.Background(), filepath.Join(dir, "missing.jtl"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

type countingChecker struct {
	calls   int
	failAt  int
	failErr error
}

func (c *countingChecker) Check() error {
	c.calls++
	if c.failAt > 0 && c.calls >= c.failAt {
		return c.failErr
	}
	return nil
}

func TestExtractor_ResourceChecker(t *testing.T) {
	input := "responseCode,URL\n400,http://a\n400,http://b\n400,http://c\n400,http://d\n400,http://e\n"

	checker := &countingChecker{}
	e := newTestExtractor(config.NewDefaultExtractorConfig())
	e.SetResourceChecker(checker, 2)

	_, err := e.Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, checker.calls)

	limitErr := errors.New("over budget")
	e.SetResourceChecker(&countingChecker{failAt: 1, failErr: limitErr}, 2)

	_, err = e.Extract(context.Background(), strings.NewReader(input))
	assert.ErrorIs(t, err, limitErr)
	assert.Contains(t, err.Error(), "line 3")
}

func TestExtractor_ResourceCheckCountsAggregatedRows(t *testing.T) {
	// Every second data row is malformed; four rows still get aggregated.
	input := "responseCode,URL\n400,http://a\n,http://x\n400,http://b\n,http://y\n400,http://c\n,http://z\n400,http://d\n"

	checker := &countingChecker{}
	e := newTestExtractor(config.NewDefaultExtractorConfig())
	e.SetResourceChecker(checker, 2)

	result, err := e.Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, result.RowsSkipped)
	assert.Equal(t, 2, checker.calls)
}

func TestExtractor_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExtractor(config.NewDefaultExtractorConfig()).
		Extract(ctx, strings.NewReader("responseCode,URL\n400,http://a\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "line 2")
}

type cancellingChecker struct {
	cancel context.CancelFunc
}

func (c *cancellingChecker) Check() error {
	c.cancel()
	return nil
}

func TestExtractor_CancelledMidFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := newTestExtractor(config.NewDefaultExtractorConfig())
	e.SetResourceChecker(&cancellingChecker{cancel: cancel}, 1)

	_, err := e.Extract(ctx, strings.NewReader("responseCode,URL\n400,http://a\n400,http://b\n400,http://c\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "line 3")
}
