package features

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullInput() RawInput {
	return RawInput{
		"fixed acidity":        "7.4",
		"volatile acidity":     "0.70",
		"citric acid":          "0",
		"residual sugar":       "1.9",
		"chlorides":            "0.076",
		"free sulfur dioxide":  "11",
		"total sulfur dioxide": "34",
		"density":              "0.9978",
		"pH":                   "3.51",
		"sulphates":            "0.56",
		"alcohol":              "9.4",
	}
}

func TestSchemaOrder(t *testing.T) {
	assert.Equal(t, NumFeatures, Wine.Len())
	assert.Equal(t, 0, Wine.Index("fixed acidity"))
	assert.Equal(t, 8, Wine.Index("pH"))
	assert.Equal(t, 10, Wine.Index("alcohol"))
	assert.Equal(t, -1, Wine.Index("quality"))

	names := Wine.Names()
	names[0] = "mutated"
	assert.Equal(t, "fixed acidity", Wine.FeatureNames[0])
}

func TestSchemaMatch(t *testing.T) {
	require.NoError(t, Wine.Match(Wine.Names()))

	swapped := Wine.Names()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	var sm *SchemaMismatchError
	assert.ErrorAs(t, Wine.Match(swapped), &sm)
	assert.ErrorAs(t, Wine.Match(swapped[:10]), &sm)
}

func TestValidateFull(t *testing.T) {
	vec, err := Validate(fullInput())
	require.NoError(t, err)
	require.Len(t, vec, NumFeatures)

	v, ok := vec["density"].Get()
	assert.True(t, ok)
	assert.InDelta(t, 0.9978, v, 1e-12)
	assert.Empty(t, vec.MissingFeatures())
}

func TestValidateBlankMeansMissing(t *testing.T) {
	raw := fullInput()
	raw["citric acid"] = "   "
	delete(raw, "sulphates")

	vec, err := Validate(raw)
	require.NoError(t, err)
	assert.Len(t, vec, NumFeatures)
	assert.True(t, vec["citric acid"].IsMissing())
	assert.True(t, vec["sulphates"].IsMissing())
	assert.Equal(t, []string{"citric acid", "sulphates"}, vec.MissingFeatures())
}

func TestValidateTrimsAndAcceptsOutOfRange(t *testing.T) {
	raw := fullInput()
	raw["pH"] = "  -3.2\t"
	raw["alcohol"] = "1e3"

	vec, err := Validate(raw)
	require.NoError(t, err)
	ph, _ := vec["pH"].Get()
	alc, _ := vec["alcohol"].Get()
	assert.Equal(t, -3.2, ph)
	assert.Equal(t, 1000.0, alc)
}

func TestValidateFailFast(t *testing.T) {
	raw := fullInput()
	raw["chlorides"] = "abc"
	raw["alcohol"] = "also bad"

	vec, err := Validate(raw)
	assert.Nil(t, vec)

	var ife *InvalidFeatureValueError
	require.True(t, errors.As(err, &ife))
	assert.Equal(t, "chlorides", ife.Feature)
	assert.Equal(t, "abc", ife.RawValue)
}

func TestValidateRejectsNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "inf", "-Inf", "1e400"} {
		raw := fullInput()
		raw["density"] = s
		_, err := Validate(raw)
		var ife *InvalidFeatureValueError
		assert.ErrorAs(t, err, &ife, s)
	}
}

func TestValidateUnknownKey(t *testing.T) {
	raw := fullInput()
	raw["quality"] = "5"
	raw["colour"] = "red"

	_, err := Validate(raw)
	var sm *SchemaMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, []string{"colour", "quality"}, sm.Unknown)
}

func TestNewVector(t *testing.T) {
	alcohol := 11.0
	nan := math.NaN()
	vec, err := NewVector(map[string]*float64{"alcohol": &alcohol, "pH": &nan})
	require.NoError(t, err)
	assert.Len(t, vec, NumFeatures)
	assert.Len(t, vec.MissingFeatures(), 10)

	inf := math.Inf(1)
	_, err = NewVector(map[string]*float64{"alcohol": &inf})
	var ife *InvalidFeatureValueError
	assert.ErrorAs(t, err, &ife)

	_, err = NewVector(map[string]*float64{"vintage": &alcohol})
	var sm *SchemaMismatchError
	assert.ErrorAs(t, err, &sm)
}

func TestOrdered(t *testing.T) {
	vec, err := Validate(fullInput())
	require.NoError(t, err)

	row, err := vec.Ordered()
	require.NoError(t, err)
	got := make([]float64, len(row))
	for i, v := range row {
		got[i], _ = v.Get()
	}
	want := []float64{7.4, 0.70, 0, 1.9, 0.076, 11, 34, 0.9978, 3.51, 0.56, 9.4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ordered row mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderedSchemaMismatch(t *testing.T) {
	vec, err := Validate(fullInput())
	require.NoError(t, err)

	delete(vec, "pH")
	_, err = vec.Ordered()
	var sm *SchemaMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, []string{"pH"}, sm.Missing)

	vec["pH"] = Some(3.3)
	vec["vintage"] = Some(2019)
	_, err = vec.Ordered()
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, []string{"vintage"}, sm.Unknown)

	delete(vec, "alcohol")
	_, err = vec.Ordered()
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, []string{"alcohol"}, sm.Missing)
	assert.Equal(t, []string{"vintage"}, sm.Unknown)
}
