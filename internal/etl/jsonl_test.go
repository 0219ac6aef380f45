package etl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, src Source, name string) []models.Record {
	t.Helper()
	var out []models.Record
	require.NoError(t, src.Each(name, func(rec models.Record) error {
		out = append(out, rec)
		return nil
	}))
	return out
}

func TestJSONLSourceReadsEveryLine(t *testing.T) {
	dir := t.TempDir()
	data := `{"_key": 34, "name": {"en": "Tritanium"}}
{"_key": 35, "name": {"en": "Pyerite"}, "published": true}

{"_key": 36}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "types.jsonl"), []byte(data), 0o644))

	src := NewJSONLSource(dir)
	recs := collect(t, src, "types")
	require.Len(t, recs, 3)
	assert.Equal(t, json.Number("34"), recs[0].Key())
	assert.Equal(t, true, recs[1].Get("published"))
	assert.Equal(t, json.Number("36"), recs[2].Key())

	// Each call starts over
	assert.Len(t, collect(t, src, "types"), 3)
}

func TestJSONLSourceMissingFile(t *testing.T) {
	logger.SetQuiet(true)
	defer logger.SetQuiet(false)

	recs := collect(t, NewJSONLSource(t.TempDir()), "mapMoons")
	assert.Empty(t, recs)
}

func TestJSONLSourceMalformedLineIsFatal(t *testing.T) {
	dir := t.TempDir()
	data := "{\"_key\": 1}\n{\"_key\": \n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "groups.jsonl"), []byte(data), 0o644))

	err := NewJSONLSource(dir).Each("groups", func(models.Record) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecodeRecordRejectsTrailingData(t *testing.T) {
	_, err := decodeRecord([]byte(`{"_key": 1} {"_key": 2}`))
	assert.Error(t, err)

	_, err = decodeRecord([]byte(`[1, 2]`))
	assert.Error(t, err)
}
