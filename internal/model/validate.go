package model

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// Validate checks the aggregate against the cv.schema.json file before it is
// shipped to the external generator.
func Validate(schemaPath string, cv *CVData) error {
	// Use absolute canonical file:// path for the schema so loaders on all
	// platforms (including Windows) resolve file references correctly.
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))

	raw, err := json.Marshal(cv)
	if err != nil {
		return err
	}
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
