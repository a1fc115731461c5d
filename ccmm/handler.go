// Package ccmm is the entry point for building, loading, validating and
// saving CCMM dataset metadata records. A Handler owns one record at a
// time and exposes incremental mutators over it; classification fields
// take raw vocabulary tokens and are checked against the controlled
// vocabularies before anything is stored.
//
// Handlers are not safe for concurrent use.
package ccmm

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ccmm-tools/ccmm-go/ccmm/record"
	"github.com/ccmm-tools/ccmm-go/ccmm/record/schemadata"
)

// Handler composes the entity model, the XML codec and the two-phase
// validator behind a single facade.
type Handler struct {
	logger     logrus.FieldLogger
	fs         afero.Fs
	schemaPath string
	validator  *record.SchemaValidator
	dataset    *record.Dataset
	issues     []record.Issue
}

type Option func(*Handler)

// WithLogger replaces the default logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(h *Handler) { h.logger = logger }
}

// WithFs replaces the filesystem used for all file operations.
func WithFs(fs afero.Fs) Option {
	return func(h *Handler) { h.fs = fs }
}

// WithSchemaFile selects an external XSD schema bundle instead of the
// bundled one.
func WithSchemaFile(path string) Option {
	return func(h *Handler) { h.schemaPath = path }
}

// New returns a Handler with an empty dataset. The schema bundle is
// compiled once here; when no schema file is given the bundled CCMM
// dataset schema is used.
func New(opts ...Option) (*Handler, error) {
	h := &Handler{
		logger: logrus.StandardLogger(),
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(h)
	}

	blob := schemadata.DatasetSchema()
	if h.schemaPath != "" {
		var err error
		if blob, err = afero.ReadFile(h.fs, h.schemaPath); err != nil {
			return nil, errors.Wrap(err, "reading schema bundle")
		}
	}

	validator, err := record.NewSchemaValidator(blob)
	if err != nil {
		return nil, err
	}

	h.validator = validator
	h.dataset = record.NewDataset()

	return h, nil
}

// Close releases the compiled schema.
func (h *Handler) Close() {
	h.validator.Close()
}

func (h *Handler) SetTitle(title string) error {
	return h.dataset.SetTitle(title)
}

func (h *Handler) SetPublicationYear(year int) error {
	return h.dataset.SetPublicationYear(year)
}

func (h *Handler) SetVersion(version string) error {
	return h.dataset.SetVersion(version)
}

// AddIdentifier appends an identifier. The scheme is a vocabulary
// token, e.g. "DOI"; iri may be empty.
func (h *Handler) AddIdentifier(value, scheme, iri string) error {
	s, err := record.ParseIdentifierScheme(scheme)
	if err != nil {
		return err
	}
	return h.dataset.AddIdentifier(record.Identifier{Value: value, Scheme: s, IRI: iri})
}

func (h *Handler) AddDescription(text string) error {
	return h.dataset.AddDescription(text)
}

// AddAlternateTitle appends an alternate title; titleType may be empty.
func (h *Handler) AddAlternateTitle(title, titleType string) error {
	return h.dataset.AddAlternateTitle(record.AlternateTitle{Title: title, TitleType: titleType})
}

// AddSubject appends a subject term; scheme is free text and may be
// empty.
func (h *Handler) AddSubject(term, scheme string) error {
	return h.dataset.AddSubject(record.Subject{Term: term, Scheme: scheme})
}

// AddAgentRelationship appends an agent relationship. Role and
// agentType are vocabulary tokens; an empty agentType means person.
func (h *Handler) AddAgentRelationship(agentName, role, agentType string) error {
	r, err := record.ParseAgentRole(role)
	if err != nil {
		return err
	}
	t := record.AgentTypeEnum_person
	if agentType != "" {
		if t, err = record.ParseAgentType(agentType); err != nil {
			return err
		}
	}
	return h.dataset.AddAgentRelationship(record.AgentRelationship{AgentName: agentName, Role: r, AgentType: t})
}

// AddDistribution appends an access point; format is a vocabulary
// token and may be empty.
func (h *Handler) AddDistribution(accessURL, format string) error {
	var f record.DistributionFormatEnum
	if format != "" {
		var err error
		if f, err = record.ParseDistributionFormat(format); err != nil {
			return err
		}
	}
	return h.dataset.AddDistribution(record.Distribution{AccessURL: accessURL, Format: f})
}

func (h *Handler) AddLocation(value, locationType string) error {
	t, err := record.ParseLocationType(locationType)
	if err != nil {
		return err
	}
	return h.dataset.AddLocation(record.Location{Value: value, Type: t})
}

func (h *Handler) AddTimeReference(value, timeType string) error {
	t, err := record.ParseTimeReferenceType(timeType)
	if err != nil {
		return err
	}
	return h.dataset.AddTimeReference(record.TimeReference{Value: value, Type: t})
}

// IsValid runs both validation phases: mandatory business fields on the
// model, then XSD validation of the serialized document. It never
// fails; the issues found by the last call are kept for Diagnostics.
func (h *Handler) IsValid() bool {
	h.issues = nil

	if issues := h.dataset.CheckMandatory(); len(issues) > 0 {
		h.issues = issues
		h.logger.WithField("issues", len(issues)).Debug("mandatory field check failed")
		return false
	}

	doc, err := h.dataset.XML(false)
	if err != nil {
		h.issues = []record.Issue{{Message: err.Error(), Path: "dataset"}}
		return false
	}

	if err := h.validator.Validate([]byte(doc)); err != nil {
		if sve, ok := err.(*record.SchemaValidationError); ok {
			for _, msg := range sve.Errors {
				h.issues = append(h.issues, record.Issue{Message: msg, Path: "dataset"})
			}
		} else {
			h.issues = []record.Issue{{Message: err.Error(), Path: "dataset"}}
		}
		h.logger.WithField("issues", len(h.issues)).Debug("schema validation failed")
		return false
	}

	return true
}

// Diagnostics returns the issues found by the last IsValid call.
func (h *Handler) Diagnostics() []record.Issue {
	return append([]record.Issue(nil), h.issues...)
}

// LoadFromString replaces the current dataset with the record parsed
// from the given document. On failure the current dataset is kept.
func (h *Handler) LoadFromString(doc string) error {
	ds, err := record.DecodeString(doc)
	if err != nil {
		return err
	}
	h.dataset = ds
	return nil
}

// LoadFromFile replaces the current dataset with the record parsed from
// the given file. On failure the current dataset is kept.
func (h *Handler) LoadFromFile(path string) error {
	blob, err := afero.ReadFile(h.fs, path)
	if err != nil {
		return &record.ParseError{Op: "read", Err: err}
	}
	ds, err := record.Decode(blob)
	if err != nil {
		return err
	}
	h.dataset = ds
	h.logger.WithField("path", path).Debug("metadata record loaded")
	return nil
}

// SaveToFile writes the pretty-printed record.
func (h *Handler) SaveToFile(path string) error {
	doc, err := h.dataset.XML(true)
	if err != nil {
		return err
	}
	return errors.Wrap(afero.WriteFile(h.fs, path, []byte(doc), 0o644), "writing metadata file")
}

// ToXMLString renders the record; pretty only affects whitespace.
func (h *Handler) ToXMLString(pretty bool) (string, error) {
	return h.dataset.XML(pretty)
}

func (h *Handler) GetTitle() string {
	return h.dataset.Title()
}

func (h *Handler) GetPublicationYear() int {
	return h.dataset.PublicationYear()
}

func (h *Handler) GetIdentifiers() []record.Identifier {
	return h.dataset.Identifiers()
}

func (h *Handler) GetSubjects() []record.Subject {
	return h.dataset.Subjects()
}

// Summary is a compact overview of the current record.
type Summary struct {
	Title           string `json:"title"`
	PublicationYear int    `json:"publication_year"`
	Version         string `json:"version,omitempty"`
	Identifiers     int    `json:"identifiers_count"`
	Descriptions    int    `json:"descriptions_count"`
	Subjects        int    `json:"subjects_count"`
	Agents          int    `json:"agents_count"`
	Distributions   int    `json:"distributions_count"`
	Locations       int    `json:"locations_count"`
	TimeReferences  int    `json:"time_references_count"`
}

func (h *Handler) GetSummary() Summary {
	return Summary{
		Title:           h.dataset.Title(),
		PublicationYear: h.dataset.PublicationYear(),
		Version:         h.dataset.Version(),
		Identifiers:     len(h.dataset.Identifiers()),
		Descriptions:    len(h.dataset.Descriptions()),
		Subjects:        len(h.dataset.Subjects()),
		Agents:          len(h.dataset.AgentRelationships()),
		Distributions:   len(h.dataset.Distributions()),
		Locations:       len(h.dataset.Locations()),
		TimeReferences:  len(h.dataset.TimeReferences()),
	}
}
