package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Day Date `json:"day"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-02-29"}`), &payload))
	assert.Equal(t, "2024-02-29", payload.Day.String())

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-02-29"}`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`{"day":null}`), &payload))
	assert.True(t, payload.Day.IsZero())

	b, err = json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":null}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"day":"29/02/2024"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"day":20240229}`), &payload))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2023, 5, 1, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2023-05-01", d.String())

	require.NoError(t, d.Scan([]byte("2023-06-02")))
	assert.Equal(t, "2023-06-02", d.String())

	require.NoError(t, d.Scan("2023-07-03T00:00:00Z"))
	assert.Equal(t, "2023-07-03", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	d, err := ParseDate("2022-12-31")
	require.NoError(t, err)
	v, err = d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2022-12-31", v)
}
