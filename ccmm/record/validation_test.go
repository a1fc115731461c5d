package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccmm-tools/ccmm-go/ccmm/record"
	"github.com/ccmm-tools/ccmm-go/ccmm/record/schemadata"
)

const minimalValid = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<dataset xmlns="https://schema.ccmm.cz/dataset/1.0">` +
	`<publication_year>2024</publication_year>` +
	`<title>My dataset</title>` +
	`<identifier><value>12345</value><scheme>DOI</scheme></identifier>` +
	`</dataset>`

func TestSchemaValidator(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		doc       string
		wantedErr bool
	}{
		"Minimal conformant record": {
			doc: minimalValid,
		},
		"Title before publication year violates the sequence": {
			doc: `<dataset xmlns="https://schema.ccmm.cz/dataset/1.0">` +
				`<title>My dataset</title>` +
				`<publication_year>2024</publication_year>` +
				`<identifier><value>12345</value><scheme>DOI</scheme></identifier>` +
				`</dataset>`,
			wantedErr: true,
		},
		"Missing identifier": {
			doc: `<dataset xmlns="https://schema.ccmm.cz/dataset/1.0">` +
				`<publication_year>2024</publication_year>` +
				`<title>My dataset</title>` +
				`</dataset>`,
			wantedErr: true,
		},
		"Identifier scheme outside the vocabulary": {
			doc: `<dataset xmlns="https://schema.ccmm.cz/dataset/1.0">` +
				`<publication_year>2024</publication_year>` +
				`<title>My dataset</title>` +
				`<identifier><value>12345</value><scheme>ISBN</scheme></identifier>` +
				`</dataset>`,
			wantedErr: true,
		},
		"Missing namespace": {
			doc: `<dataset>` +
				`<publication_year>2024</publication_year>` +
				`<title>My dataset</title>` +
				`<identifier><value>12345</value><scheme>DOI</scheme></identifier>` +
				`</dataset>`,
			wantedErr: true,
		},
	}

	validator, err := record.NewSchemaValidator(schemadata.DatasetSchema())
	require.NoError(t, err)
	t.Cleanup(validator.Close)

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			err := validator.Validate([]byte(tc.doc))
			if tc.wantedErr {
				require.Error(t, err)
				sve, ok := err.(*record.SchemaValidationError)
				require.True(t, ok, "expected *SchemaValidationError, have %T", err)
				assert.NotEmpty(t, sve.Errors)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSchemaValidatorRejectsMalformedDocument(t *testing.T) {
	t.Parallel()

	validator, err := record.NewSchemaValidator(schemadata.DatasetSchema())
	require.NoError(t, err)
	t.Cleanup(validator.Close)

	err = validator.Validate([]byte(`<dataset><title>`))
	require.Error(t, err)
	assert.IsType(t, &record.ParseError{}, err)
}

func TestSchemaValidatorRejectsBadSchema(t *testing.T) {
	t.Parallel()

	_, err := record.NewSchemaValidator([]byte(`this is not a schema`))
	require.Error(t, err)
}

func TestSerializedFullRecordConformsToBundledSchema(t *testing.T) {
	t.Parallel()

	ds := record.NewDataset()
	require.NoError(t, ds.SetTitle("Complete CCMM dataset"))
	require.NoError(t, ds.SetPublicationYear(2024))
	require.NoError(t, ds.SetVersion("2.1.0"))
	require.NoError(t, ds.AddIdentifier(record.Identifier{Value: "10.1234/x", Scheme: record.IdentifierSchemeEnum_DOI, IRI: "https://doi.org/10.1234/x"}))
	require.NoError(t, ds.AddDescription("Main description."))
	require.NoError(t, ds.AddAlternateTitle(record.AlternateTitle{Title: "Alt", TitleType: "TranslatedTitle"}))
	require.NoError(t, ds.AddSubject(record.Subject{Term: "metadata", Scheme: "keyword"}))
	require.NoError(t, ds.AddAgentRelationship(record.AgentRelationship{AgentName: "Jan Novak", Role: record.AgentRoleEnum_creator}))
	require.NoError(t, ds.AddDistribution(record.Distribution{AccessURL: "https://example.com/d.csv", Format: record.DistributionFormatEnum_CSV}))
	require.NoError(t, ds.AddLocation(record.Location{Value: "Prague", Type: record.LocationTypeEnum_place}))
	require.NoError(t, ds.AddTimeReference(record.TimeReference{Value: "2024-01-01", Type: record.TimeReferenceTypeEnum_created}))

	validator, err := record.NewSchemaValidator(schemadata.DatasetSchema())
	require.NoError(t, err)
	t.Cleanup(validator.Close)

	for _, pretty := range []bool{false, true} {
		doc, err := ds.XML(pretty)
		require.NoError(t, err)
		require.NoError(t, validator.Validate([]byte(doc)), "pretty=%v", pretty)
	}
}
