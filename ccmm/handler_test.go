package ccmm_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccmm-tools/ccmm-go/ccmm"
	"github.com/ccmm-tools/ccmm-go/ccmm/record"
)

func newHandler(t *testing.T, opts ...ccmm.Option) *ccmm.Handler {
	t.Helper()
	h, err := ccmm.New(opts...)
	require.NoError(t, err)
	t.Cleanup(h.Close)
	return h
}

func TestHandlerBuildAndValidate(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	require.NoError(t, h.SetTitle("My dataset"))
	require.NoError(t, h.SetPublicationYear(2024))
	require.NoError(t, h.AddIdentifier("12345", "DOI", ""))

	assert.True(t, h.IsValid())
	assert.Empty(t, h.Diagnostics())

	doc, err := h.ToXMLString(false)
	require.NoError(t, err)
	assert.Contains(t, doc, "<identifier><value>12345</value><scheme>DOI</scheme></identifier>")
	assert.Contains(t, doc, `xmlns="`+record.Namespace+`"`)
}

func TestHandlerMandatoryGate(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	assert.False(t, h.IsValid())
	assert.Len(t, h.Diagnostics(), 3)

	require.NoError(t, h.SetTitle("My dataset"))
	assert.False(t, h.IsValid())
	assert.Len(t, h.Diagnostics(), 2)

	require.NoError(t, h.SetPublicationYear(2024))
	assert.False(t, h.IsValid())
	assert.Len(t, h.Diagnostics(), 1)

	require.NoError(t, h.AddIdentifier("12345", "DOI", ""))
	assert.True(t, h.IsValid())
	assert.Empty(t, h.Diagnostics())
}

func TestHandlerRejectsUnknownVocabularyTokens(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		mutate func(*ccmm.Handler) error
	}{
		"Identifier scheme": {
			mutate: func(h *ccmm.Handler) error { return h.AddIdentifier("12345", "NOT_A_SCHEME", "") },
		},
		"Agent role": {
			mutate: func(h *ccmm.Handler) error { return h.AddAgentRelationship("Jan Novak", "owner", "") },
		},
		"Agent type": {
			mutate: func(h *ccmm.Handler) error { return h.AddAgentRelationship("Jan Novak", "creator", "robot") },
		},
		"Distribution format": {
			mutate: func(h *ccmm.Handler) error { return h.AddDistribution("https://example.com/d", "image/png") },
		},
		"Location type": {
			mutate: func(h *ccmm.Handler) error { return h.AddLocation("Prague", "city") },
		},
		"Time reference type": {
			mutate: func(h *ccmm.Handler) error { return h.AddTimeReference("2024-01-01", "deleted") },
		},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := newHandler(t)
			err := tc.mutate(h)
			require.Error(t, err)
			assert.IsType(t, &record.ValidationError{}, err)
			assert.Equal(t, ccmm.Summary{}, h.GetSummary())
		})
	}
}

func TestHandlerLoadFromStringKeepsRecordOnFailure(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	require.NoError(t, h.SetTitle("Before"))

	err := h.LoadFromString(`<dataset><title>`)
	require.Error(t, err)
	assert.IsType(t, &record.ParseError{}, err)
	assert.Equal(t, "Before", h.GetTitle())
}

func TestHandlerLoadFromStringIgnoresUnknownElements(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	const doc = `<dataset xmlns="https://schema.ccmm.cz/dataset/1.0">` +
		`<publication_year>2024</publication_year>` +
		`<title>Permissive</title>` +
		`<funding_reference><funder>GACR</funder></funding_reference>` +
		`<identifier><value>12345</value><scheme>DOI</scheme></identifier>` +
		`</dataset>`
	require.NoError(t, h.LoadFromString(doc))

	assert.Equal(t, "Permissive", h.GetTitle())
	assert.Equal(t, 2024, h.GetPublicationYear())
	require.Len(t, h.GetIdentifiers(), 1)
	assert.True(t, h.IsValid())
}

func TestHandlerSaveAndLoadFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	h := newHandler(t, ccmm.WithFs(fs))
	require.NoError(t, h.SetTitle("My dataset"))
	require.NoError(t, h.SetPublicationYear(2024))
	require.NoError(t, h.AddIdentifier("12345", "DOI", ""))
	require.NoError(t, h.AddSubject("metadata", "keyword"))

	require.NoError(t, h.SaveToFile("/tmp/record.xml"))

	other := newHandler(t, ccmm.WithFs(fs))
	require.NoError(t, other.LoadFromFile("/tmp/record.xml"))

	assert.Equal(t, "My dataset", other.GetTitle())
	assert.Equal(t, 2024, other.GetPublicationYear())
	require.Len(t, other.GetIdentifiers(), 1)
	assert.Equal(t, "12345", other.GetIdentifiers()[0].Value)
	require.Len(t, other.GetSubjects(), 1)
	assert.True(t, other.IsValid())
}

func TestHandlerLoadFromMissingFile(t *testing.T) {
	t.Parallel()

	h := newHandler(t, ccmm.WithFs(afero.NewMemMapFs()))
	err := h.LoadFromFile("/nowhere/record.xml")
	require.Error(t, err)
	assert.IsType(t, &record.ParseError{}, err)
}

func TestHandlerExternalSchemaFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	_, err := ccmm.New(ccmm.WithFs(fs), ccmm.WithSchemaFile("/schemas/missing.xsd"))
	require.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/schemas/broken.xsd", []byte("not a schema"), 0o644))
	_, err = ccmm.New(ccmm.WithFs(fs), ccmm.WithSchemaFile("/schemas/broken.xsd"))
	require.Error(t, err)
}

func TestHandlerGetSummary(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	require.NoError(t, h.SetTitle("My dataset"))
	require.NoError(t, h.SetPublicationYear(2024))
	require.NoError(t, h.SetVersion("1.0.0"))
	require.NoError(t, h.AddIdentifier("12345", "DOI", ""))
	require.NoError(t, h.AddIdentifier("550e8400-e29b-41d4-a716-446655440000", "UUID", ""))
	require.NoError(t, h.AddDescription("Main description."))
	require.NoError(t, h.AddSubject("metadata", "keyword"))
	require.NoError(t, h.AddAgentRelationship("Jan Novak", "creator", ""))
	require.NoError(t, h.AddDistribution("https://example.com/dataset.csv", "text/csv"))
	require.NoError(t, h.AddLocation("Prague", "place"))
	require.NoError(t, h.AddTimeReference("2024-01-01", "created"))

	assert.Equal(t, ccmm.Summary{
		Title:           "My dataset",
		PublicationYear: 2024,
		Version:         "1.0.0",
		Identifiers:     2,
		Descriptions:    1,
		Subjects:        1,
		Agents:          1,
		Distributions:   1,
		Locations:       1,
		TimeReferences:  1,
	}, h.GetSummary())
}
