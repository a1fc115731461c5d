package record

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxIdentifierLength caps identifier values, matching the CCMM
// identifier value type.
const maxIdentifierLength = 255

// Identifier is a persistent identifier of the dataset.
type Identifier struct {
	Value  string
	Scheme IdentifierSchemeEnum
	IRI    string
}

func (id Identifier) validate() error {
	if err := nonEmpty("identifier value", id.Value); err != nil {
		return err
	}
	if len(id.Value) > maxIdentifierLength {
		return &ValidationError{Field: "identifier value", Reason: fmt.Sprintf("longer than %d characters", maxIdentifierLength)}
	}
	if _, ok := _IdentifierSchemeEnumValueToName[id.Scheme]; !ok {
		return &ValidationError{Field: "scheme", Reason: "not a known identifier scheme"}
	}
	if id.Scheme == IdentifierSchemeEnum_UUID {
		if _, err := uuid.Parse(id.Value); err != nil {
			return &ValidationError{Field: "identifier value", Reason: fmt.Sprintf("not a valid UUID: %v", err)}
		}
	}
	if id.IRI != "" {
		if err := wellFormedURI("iri", id.IRI); err != nil {
			return err
		}
	}
	return nil
}

// AlternateTitle is an additional title of the dataset. TitleType is
// free text and may be empty.
type AlternateTitle struct {
	Title     string
	TitleType string
}

func (at AlternateTitle) validate() error {
	return nonEmpty("alternate title", at.Title)
}

// Subject is a keyword or classification term. Scheme is free text and
// may be empty.
type Subject struct {
	Term   string
	Scheme string
}

func (s Subject) validate() error {
	return nonEmpty("subject", s.Term)
}

// AgentRelationship links the dataset to a person or organization
// acting in a given role.
type AgentRelationship struct {
	AgentName string
	Role      AgentRoleEnum
	AgentType AgentTypeEnum
}

func (ar AgentRelationship) validate() error {
	if err := nonEmpty("agent name", ar.AgentName); err != nil {
		return err
	}
	if _, ok := _AgentRoleEnumValueToName[ar.Role]; !ok {
		return &ValidationError{Field: "role", Reason: "not a known agent role"}
	}
	if _, ok := _AgentTypeEnumValueToName[ar.AgentType]; !ok {
		return &ValidationError{Field: "agent_type", Reason: "not a known agent type"}
	}
	return nil
}

// Distribution is an access point of the dataset. Format is optional;
// the zero value means unspecified.
type Distribution struct {
	AccessURL string
	Format    DistributionFormatEnum
}

func (d Distribution) validate() error {
	if err := wellFormedURI("access_url", d.AccessURL); err != nil {
		return err
	}
	if d.Format != 0 {
		if _, ok := _DistributionFormatEnumValueToName[d.Format]; !ok {
			return &ValidationError{Field: "format", Reason: "not a known distribution format"}
		}
	}
	return nil
}

// Location is a geographical reference of the dataset.
type Location struct {
	Value string
	Type  LocationTypeEnum
}

func (l Location) validate() error {
	if err := nonEmpty("location", l.Value); err != nil {
		return err
	}
	if _, ok := _LocationTypeEnumValueToName[l.Type]; !ok {
		return &ValidationError{Field: "location_type", Reason: "not a known location type"}
	}
	return nil
}

// TimeReference is a dated event in the dataset lifecycle.
type TimeReference struct {
	Value string
	Type  TimeReferenceTypeEnum
}

func (tr TimeReference) validate() error {
	if err := nonEmpty("time value", tr.Value); err != nil {
		return err
	}
	if _, ok := _TimeReferenceTypeEnumValueToName[tr.Type]; !ok {
		return &ValidationError{Field: "time_type", Reason: "not a known time reference type"}
	}
	return nil
}

// Dataset is the root entity of a CCMM metadata record. All collections
// preserve insertion order. The zero publication year and the empty
// title mean "not set yet"; CheckMandatory reports them.
type Dataset struct {
	title              string
	publicationYear    int
	version            string
	identifiers        []Identifier
	descriptions       []string
	alternateTitles    []AlternateTitle
	subjects           []Subject
	agentRelationships []AgentRelationship
	distributions      []Distribution
	locations          []Location
	timeReferences     []TimeReference
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{}
}

func (d *Dataset) SetTitle(title string) error {
	if err := nonEmpty("title", title); err != nil {
		return err
	}
	d.title = title
	return nil
}

func (d *Dataset) SetPublicationYear(year int) error {
	if err := plausibleYear(year); err != nil {
		return err
	}
	d.publicationYear = year
	return nil
}

func (d *Dataset) SetVersion(version string) error {
	if err := nonEmpty("version", version); err != nil {
		return err
	}
	d.version = version
	return nil
}

func (d *Dataset) AddIdentifier(id Identifier) error {
	if err := id.validate(); err != nil {
		return err
	}
	d.identifiers = append(d.identifiers, id)
	return nil
}

func (d *Dataset) AddDescription(text string) error {
	if err := nonEmpty("description", text); err != nil {
		return err
	}
	d.descriptions = append(d.descriptions, text)
	return nil
}

func (d *Dataset) AddAlternateTitle(at AlternateTitle) error {
	if err := at.validate(); err != nil {
		return err
	}
	d.alternateTitles = append(d.alternateTitles, at)
	return nil
}

func (d *Dataset) AddSubject(s Subject) error {
	if err := s.validate(); err != nil {
		return err
	}
	d.subjects = append(d.subjects, s)
	return nil
}

// AddAgentRelationship appends a relationship. A zero AgentType
// defaults to person.
func (d *Dataset) AddAgentRelationship(ar AgentRelationship) error {
	if ar.AgentType == 0 {
		ar.AgentType = AgentTypeEnum_person
	}
	if err := ar.validate(); err != nil {
		return err
	}
	d.agentRelationships = append(d.agentRelationships, ar)
	return nil
}

func (d *Dataset) AddDistribution(dist Distribution) error {
	if err := dist.validate(); err != nil {
		return err
	}
	d.distributions = append(d.distributions, dist)
	return nil
}

func (d *Dataset) AddLocation(l Location) error {
	if err := l.validate(); err != nil {
		return err
	}
	d.locations = append(d.locations, l)
	return nil
}

func (d *Dataset) AddTimeReference(tr TimeReference) error {
	if err := tr.validate(); err != nil {
		return err
	}
	d.timeReferences = append(d.timeReferences, tr)
	return nil
}

func (d *Dataset) Title() string {
	return d.title
}

func (d *Dataset) PublicationYear() int {
	return d.publicationYear
}

func (d *Dataset) Version() string {
	return d.version
}

// The collection accessors return copies so callers cannot bypass the
// mutators.

func (d *Dataset) Identifiers() []Identifier {
	return append([]Identifier(nil), d.identifiers...)
}

func (d *Dataset) Descriptions() []string {
	return append([]string(nil), d.descriptions...)
}

func (d *Dataset) AlternateTitles() []AlternateTitle {
	return append([]AlternateTitle(nil), d.alternateTitles...)
}

func (d *Dataset) Subjects() []Subject {
	return append([]Subject(nil), d.subjects...)
}

func (d *Dataset) AgentRelationships() []AgentRelationship {
	return append([]AgentRelationship(nil), d.agentRelationships...)
}

func (d *Dataset) Distributions() []Distribution {
	return append([]Distribution(nil), d.distributions...)
}

func (d *Dataset) Locations() []Location {
	return append([]Location(nil), d.locations...)
}

func (d *Dataset) TimeReferences() []TimeReference {
	return append([]TimeReference(nil), d.timeReferences...)
}

// CheckMandatory reports the business-required fields that are still
// missing: title, publication year and at least one identifier.
func (d *Dataset) CheckMandatory() []Issue {
	var issues []Issue
	if strings.TrimSpace(d.title) == "" {
		issues = append(issues, Issue{Message: "title is not set", Path: "dataset/title"})
	}
	if d.publicationYear == 0 {
		issues = append(issues, Issue{Message: "publication year is not set", Path: "dataset/publication_year"})
	}
	if len(d.identifiers) == 0 {
		issues = append(issues, Issue{Message: "at least one identifier is required", Path: "dataset/identifier"})
	}
	return issues
}

func nonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "cannot be empty"}
	}
	return nil
}

func wellFormedURI(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "cannot be empty"}
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("invalid URI %q", value)}
	}
	return nil
}

func plausibleYear(year int) error {
	max := time.Now().Year() + 10
	if year < 1000 || year > max {
		return &ValidationError{Field: "publication_year", Reason: fmt.Sprintf("must be between 1000 and %d", max)}
	}
	return nil
}
