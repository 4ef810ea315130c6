package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/model"
)

// document is the on-disk JSON format:
//
//	{
//	  "elements": [
//	    {"id": "w1", "class": "wall", "curve": {...}, "bounds": {...}}
//	  ]
//	}
type document struct {
	Elements []*model.Element `json:"elements"`
}

// ReadJSON decodes a document from r into a new Store.
func ReadJSON(r io.Reader, opts ...Option) (*Store, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "decode model")
	}
	return New(doc.Elements, opts...)
}

// WriteJSON encodes every element of s to w, indented, in insertion order.
func (s *Store) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Elements: s.All()}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Load reads a document from the JSON file at path.
func Load(path string, opts ...Option) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "model file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f, opts...)
}

// Save writes the document to the JSON file at path.
func (s *Store) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
