package etl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/models"
)

// JSONLSource reads <Dir>/<name>.jsonl files, one JSON object per line.
type JSONLSource struct {
	Dir string
}

func NewJSONLSource(dir string) *JSONLSource {
	return &JSONLSource{Dir: dir}
}

// Path returns the file backing the named source.
func (s *JSONLSource) Path(name string) string {
	return filepath.Join(s.Dir, name+".jsonl")
}

func (s *JSONLSource) Each(name string, fn func(models.Record) error) error {
	path := s.Path(name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warnf("%s not found, skipping", path)
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 1<<20)
	for lineNo := 1; ; lineNo++ {
		line, readErr := r.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read %s: %w", path, readErr)
		}

		if len(bytes.TrimSpace(line)) > 0 {
			rec, err := decodeRecord(line)
			if err != nil {
				return fmt.Errorf("decode %s line %d: %w", path, lineNo, err)
			}
			if err := fn(rec); err != nil {
				return err
			}
		}

		if readErr == io.EOF {
			return nil
		}
	}
}

// decodeRecord decodes a single JSON object, keeping numbers as json.Number.
func decodeRecord(data []byte) (models.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec models.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after object")
	}
	if rec == nil {
		rec = models.Record{}
	}
	return rec, nil
}
