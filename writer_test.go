package wordusage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePlain(t *testing.T) {
	report := rank("the cat sat on the mat the cat ran teh", catFrequencies)
	var buff bytes.Buffer
	require.Nil(t, WriteReport(&buff, report, FormatPlain, nil))

	expected := `cat 200.000000
the 6.000000
mat (0.0005)
on (0.0005)
ran (0.0005)
sat (0.0005)
teh (possibly misspelled or unknown)
`
	require.Equal(t, expected, buff.String())
}

func TestWriteCSV(t *testing.T) {
	report := rank("the cat sat on the mat the cat ran teh", catFrequencies)
	var buff bytes.Buffer
	require.Nil(t, WriteReport(&buff, report, FormatCSV, nil))

	expected := `Word,Relative Frequency,Minimum Gap,Count
cat,200.000000,6,2
the,6.000000,2,3
mat,0.0005,,1
on,0.0005,,1
ran,0.0005,,1
sat,0.0005,,1
teh,possibly misspelled or unknown,,
`
	require.Equal(t, expected, buff.String())
}

func TestWriteEmptyReport(t *testing.T) {
	report := rank("", catFrequencies)

	var plain bytes.Buffer
	require.Nil(t, WriteReport(&plain, report, FormatPlain, nil))
	require.Empty(t, plain.String())

	var tabular bytes.Buffer
	require.Nil(t, WriteReport(&tabular, report, FormatCSV, nil))
	require.Equal(t, "Word,Relative Frequency,Minimum Gap,Count\n", tabular.String())
}

func TestDisplayValue(t *testing.T) {
	testcases := []struct {
		stat     *WordStat
		expected string
	}{
		{stat: &WordStat{Class: ClassCommon, RelativeFrequency: 286.9795371}, expected: "286.979537"},
		{stat: &WordStat{Class: ClassCommon, RelativeFrequency: 0.6277161}, expected: "0.627716"},
		{stat: &WordStat{Class: ClassSingleton, ReferenceFrequency: 1.62e-08}, expected: "1.62e-08"},
		{stat: &WordStat{Class: ClassSingleton, ReferenceFrequency: 0.000776}, expected: "0.000776"},
		{stat: &WordStat{Class: ClassSingleton, ReferenceFrequency: 5e-05}, expected: "5e-05"},
		{stat: &WordStat{Class: ClassUnknown}, expected: UnknownLabel},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, DisplayValue(tc.stat))
	}
}

func TestWriteCustomTemplates(t *testing.T) {
	report := rank("b a b zq", FixedFrequencies{"a": 0.5, "b": 0.25})
	var buff bytes.Buffer
	opts := &WriterOptions{Templates: Templates{Common: "{{word}}\t{{value}}\t{{count}}\t{{gap}}"}}
	require.Nil(t, WriteReport(&buff, report, FormatPlain, opts))

	expected := "b\t2.000000\t2\t2\na (0.5)\nzq (possibly misspelled or unknown)\n"
	require.Equal(t, expected, buff.String())
}

func TestWriteExcludeStopwords(t *testing.T) {
	report := rank("the cat sat on the mat the cat ran", catFrequencies)
	var buff bytes.Buffer
	require.Nil(t, WriteReport(&buff, report, FormatPlain, &WriterOptions{ExcludeStopwords: true, Language: "en"}))
	require.NotContains(t, buff.String(), "the ")
	require.Contains(t, buff.String(), "cat 222.222222\n")
}

func TestParseFormat(t *testing.T) {
	for _, v := range []string{"plain", "TXT", " text "} {
		f, err := ParseFormat(v)
		require.Nil(t, err)
		require.Equal(t, FormatPlain, f)
	}
	for _, v := range []string{"csv", "Tabular"} {
		f, err := ParseFormat(v)
		require.Nil(t, err)
		require.Equal(t, FormatCSV, f)
	}
	_, err := ParseFormat("xml")
	require.NotNil(t, err)

	require.Equal(t, FormatCSV, FormatForPath("out/report.CSV"))
	require.Equal(t, FormatPlain, FormatForPath("rhl.op"))
}

func TestTemplatesValidate(t *testing.T) {
	require.Nil(t, DefaultTemplates.Validate())
	require.NotNil(t, Templates{Common: "{{word", Singleton: "x", Unknown: "y"}.Validate())
}
