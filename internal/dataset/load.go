package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Load operation names reported in LoadError.Op.
const (
	OpRead     = "read"
	OpParse    = "parse"
	OpValidate = "validate"
)

// LoadError reports why a dataset file could not be turned into a Dataset.
// Any LoadError is fatal to startup.
type LoadError struct {
	Path string
	Op   string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// shapeValidate checks the top-level keys. It reports JSON names so the
// operator sees the key that is missing from the file.
var shapeValidate = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads the JSON document at path and returns the snapshot.
//
// Only the presence of user, goals, reviews and reflections is checked; an
// empty list is fine, a missing key or null is not. Reviews that name both
// or neither kind of reviewer are rejected while parsing.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Op: OpRead, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes an already-read document. path is used only for errors.
func Parse(path string, data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, &LoadError{Path: path, Op: OpParse, Err: err}
	}

	if err := shapeValidate.Struct(&ds); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			err = fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
		}
		return nil, &LoadError{Path: path, Op: OpValidate, Err: err}
	}

	return &ds, nil
}
