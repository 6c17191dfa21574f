package data

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSVSemicolonWithQuality(t *testing.T) {
	in := `"fixed acidity";"volatile acidity";"citric acid";"residual sugar";"chlorides";"free sulfur dioxide";"total sulfur dioxide";"density";"pH";"sulphates";"alcohol";"quality"
7.4;0.7;0;1.9;0.076;11;34;0.9978;3.51;0.56;9.4;5

7.8;0.88;0;2.6;0.098;25;67;0.9968;3.2;0.68;9.8;5
`
	tab, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"quality"}, tab.Ignored)
	require.Len(t, tab.Rows, 2)
	assert.Equal(t, "9.4", tab.Rows[0]["alcohol"])
	assert.Equal(t, "0.88", tab.Rows[1]["volatile acidity"])
	assert.NotContains(t, tab.Rows[0], "quality")
}

func TestReadCSVCommaShortRows(t *testing.T) {
	in := "alcohol,pH,density\n10.1,3.3\n"
	tab, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, "10.1", tab.Rows[0]["alcohol"])
	assert.Equal(t, "3.3", tab.Rows[0]["pH"])
	assert.Equal(t, "", tab.Rows[0]["density"])
}

func TestReadCSVLongHeaderDelimiter(t *testing.T) {
	in := strings.Repeat("x", 5000) + ";alcohol;pH\n1;9.4;3.3\n"
	tab, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, tab.Ignored, 1)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, "9.4", tab.Rows[0]["alcohol"])
	assert.Equal(t, "3.3", tab.Rows[0]["pH"])
}

func TestReadCSVRejectsForeignHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"alcohol", "sulphates", "id"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"11.2", "0.6", "w-1"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tab, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, tab.Ignored)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, "11.2", tab.Rows[0]["alcohol"])
	assert.Equal(t, "0.6", tab.Rows[0]["sulphates"])
}

func TestReadFileUnsupported(t *testing.T) {
	_, err := ReadFile("batch.parquet")
	assert.ErrorContains(t, err, "unsupported")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Record{
		{Row: 1, Score: 5.04, Category: "Regular"},
		{Row: 2, Err: errors.New("bad pH")},
	})
	require.NoError(t, err)
	assert.Equal(t, "row,score,category,error\n1,5.04,Regular,\n2,,,bad pH\n", buf.String())
}
