package record

import (
	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/xsd"
	"github.com/pkg/errors"
)

// Validator performs structural validation of serialized records.
//
// Implementors receive a complete XML document and return nil when it
// conforms, a *SchemaValidationError listing the issues otherwise.
type Validator interface {
	Validate(doc []byte) error
}

// SchemaValidator validates documents against a compiled XSD schema.
// The schema blob is compiled once at construction; Close releases it.
// Instances are not safe for concurrent use.
type SchemaValidator struct {
	schema *xsd.Schema
}

var _ Validator = (*SchemaValidator)(nil)

// NewSchemaValidator compiles the given XSD blob. The blob must be
// self-contained; multi-file bundles have to be flattened by the
// schema supplier.
func NewSchemaValidator(blob []byte) (*SchemaValidator, error) {
	schema, err := xsd.Parse(blob)
	if err != nil {
		return nil, errors.Wrap(err, "parsing XSD schema")
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate implements the Validator interface.
func (v *SchemaValidator) Validate(blob []byte) error {
	doc, err := libxml2.Parse(blob)
	if err != nil {
		return &ParseError{Op: "document", Err: err}
	}
	defer doc.Free()

	if err := v.schema.Validate(doc); err != nil {
		issues := &SchemaValidationError{}
		if sve, ok := err.(xsd.SchemaValidationError); ok {
			for _, e := range sve.Errors() {
				issues.Errors = append(issues.Errors, e.Error())
			}
		} else {
			issues.Errors = append(issues.Errors, err.Error())
		}
		return issues
	}

	return nil
}

// Close frees the compiled schema. The validator must not be used
// afterwards.
func (v *SchemaValidator) Close() {
	if v.schema != nil {
		v.schema.Free()
		v.schema = nil
	}
}
