package rews

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_Result_ToCSV(t *testing.T) {
	res, err := NewResult(MethodLine, []float64{0, 7}, []float64{0, 0.5}, []float64{8, 6.25})
	require.NoError(t, err)

	var buf bytes.Buffer
	res.ToCSV(&buf)
	assert.Equal(t, "turbine,x,y,rews\n0,0,0,8\n1,7,0.5,6.25\n", buf.String())
}

func Test_Result_ToYAML(t *testing.T) {
	res, err := NewResult(MethodArea, []float64{1}, []float64{2}, []float64{3.5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.ToYAML(&buf))

	var got Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *res, got)
}

func Test_NewResult_LengthMismatch(t *testing.T) {
	_, err := NewResult(MethodPoint, []float64{0}, []float64{0}, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
