package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/encoding/unicode"
)

func writeExport(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestNormalize_PreambleBeforeHeader(t *testing.T) {
	data := "Keyword Stats 2024-01-01 at 10_00_00\n" +
		"All locations\n" +
		"Keyword,Avg. monthly searches,Competition\n" +
		"running shoes,\"1,200\",Low\n"

	records := Normalize([]byte(data), "brand")

	require.Len(t, records, 1)
	assert.Equal(t, "running shoes", records[0].Keyword)
	require.NotNil(t, records[0].AvgMonthlySearches)
	assert.Equal(t, 1200.0, *records[0].AvgMonthlySearches)
	assert.Equal(t, "Low", records[0].Competition)
	assert.Equal(t, "brand", records[0].Source)
}

func TestNormalize_SemicolonAndCurrency(t *testing.T) {
	data := "Keyword;Search volume;Top of page bid (low range);Top of page bid (high range)\n" +
		"Whey Protein;₹ 2,400;Rs. 12.50;INR 30\n"

	records := Normalize([]byte(data), "competitor")

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "whey protein", rec.Keyword)
	assert.Equal(t, 2400.0, *rec.AvgMonthlySearches)
	assert.Equal(t, 12.5, *rec.TopOfPageBidLow)
	assert.Equal(t, 30.0, *rec.TopOfPageBidHigh)
}

func TestNormalize_UTF16TabSeparated(t *testing.T) {
	text := "Keyword\tAvg. monthly searches\tLocation\r\nwhey mumbai\t880\tMumbai\r\n"
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(text)
	require.NoError(t, err)

	table, err := ParseTable([]byte(encoded), nil)

	require.NoError(t, err)
	assert.Equal(t, "utf-16", table.Encoding)
	assert.Equal(t, '\t', table.Delimiter)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "whey mumbai", table.Records[0].Keyword)
	assert.Equal(t, 880.0, *table.Records[0].AvgMonthlySearches)
	assert.Equal(t, "Mumbai", table.Records[0].Location)
}

func TestNormalize_UTF16BigEndianWithoutBOM(t *testing.T) {
	text := "Keyword|Volume\ncreatine|300\n"
	encoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().String(text)
	require.NoError(t, err)

	table, err := ParseTable([]byte(encoded), nil)

	require.NoError(t, err)
	assert.Equal(t, "utf-16-be", table.Encoding)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "creatine", table.Records[0].Keyword)
}

func TestNormalize_UTF8WithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Keyword,Volume\nbcaa,90\n")...)

	table, err := ParseTable(data, nil)

	require.NoError(t, err)
	assert.Equal(t, "utf-8-sig", table.Encoding)
	assert.Equal(t, "bcaa", table.Records[0].Keyword)
}

func TestNormalize_BadRowsAreSkippedIndividually(t *testing.T) {
	data := "Keyword,Volume,Competition\n" +
		"whey,100,High\n" +
		"too,many,fields,here\n" +
		"creatine\n" +
		",50,Low\n" +
		"bcaa,--,Medium\n"

	table, err := ParseTable([]byte(data), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, table.SkippedRows)
	require.Len(t, table.Records, 3)
	assert.Equal(t, "whey", table.Records[0].Keyword)
	assert.Equal(t, "creatine", table.Records[1].Keyword)
	assert.Nil(t, table.Records[1].AvgMonthlySearches)
	assert.Empty(t, table.Records[1].Competition)
	assert.Equal(t, "bcaa", table.Records[2].Keyword)
	assert.Nil(t, table.Records[2].AvgMonthlySearches)
}

func TestNormalize_DuplicateAndAliasedColumns(t *testing.T) {
	data := "Volume,Keyword,Avg. monthly searches,Avg. monthly searches\n" +
		"1,whey,10,20\n"

	records := Normalize([]byte(data), "x")

	require.Len(t, records, 1)
	assert.Equal(t, 10.0, *records[0].AvgMonthlySearches)
}

func TestNormalize_SingleColumnIsRejected(t *testing.T) {
	data := "\"keyword,volume\"\n\"whey,100\"\n"

	_, err := ParseTable([]byte(data), nil)

	var colErr *TooFewColumnsError
	assert.ErrorAs(t, err, &colErr)
	assert.Empty(t, Normalize([]byte(data), "x"))
}

func TestNormalize_NoHeader(t *testing.T) {
	data := "just some text\nwithout a table\n"

	_, err := ParseTable([]byte(data), nil)

	var hdrErr *HeaderNotFoundError
	assert.ErrorAs(t, err, &hdrErr)
}

func TestNormalize_HeaderBeyondScanLimit(t *testing.T) {
	data := make([]byte, 0, 4096)
	for i := 0; i < headerScanLimit; i++ {
		data = append(data, "preamble\n"...)
	}
	data = append(data, "Keyword,Volume\nwhey,100\n"...)

	assert.Empty(t, Normalize(data, "x"))
}

func TestNormalizeFile_MissingFileLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	records := NormalizeFile(filepath.Join(t.TempDir(), "absent.csv"), "brand", WithLogger(zap.New(core)))

	assert.Empty(t, records)
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "keyword file unreadable, skipping", warnings[0].Message)
}

func TestNormalizeFile_EmptyPath(t *testing.T) {
	assert.Empty(t, NormalizeFile("", "brand"))
}

func TestNormalizeFile_ReadsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	path := writeExport(t, "brand.csv", []byte("Keyword,Volume\nmusclefuel whey,400\n"))

	records := NormalizeFile(path, "brand", WithLogger(zap.New(core)))

	require.Len(t, records, 1)
	assert.Equal(t, "brand", records[0].Source)
	infos := logs.FilterMessage("keyword file normalized").All()
	require.Len(t, infos, 1)
	assert.Equal(t, "utf-8-sig", infos[0].ContextMap()["encoding"])
}
