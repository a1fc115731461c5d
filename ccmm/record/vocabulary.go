package record

import (
	"encoding/json"
	"fmt"
)

// The CCMM controlled vocabularies. Each classification field accepts
// only the tokens listed in its table; the same table drives both the
// XML rendition and the parsers, so an enum value and its schema token
// are always one-to-one.

// IdentifierSchemeEnum is the scheme of an identifier.
type IdentifierSchemeEnum int

const (
	IdentifierSchemeEnum_DOI IdentifierSchemeEnum = iota + 1
	IdentifierSchemeEnum_Handle
	IdentifierSchemeEnum_ARK
	IdentifierSchemeEnum_ORCID
	IdentifierSchemeEnum_URL
	IdentifierSchemeEnum_UUID
)

var _IdentifierSchemeEnumNameToValue = map[string]IdentifierSchemeEnum{
	"DOI":    IdentifierSchemeEnum_DOI,
	"Handle": IdentifierSchemeEnum_Handle,
	"ARK":    IdentifierSchemeEnum_ARK,
	"ORCID":  IdentifierSchemeEnum_ORCID,
	"URL":    IdentifierSchemeEnum_URL,
	"UUID":   IdentifierSchemeEnum_UUID,
}

var _IdentifierSchemeEnumValueToName = map[IdentifierSchemeEnum]string{
	IdentifierSchemeEnum_DOI:    "DOI",
	IdentifierSchemeEnum_Handle: "Handle",
	IdentifierSchemeEnum_ARK:    "ARK",
	IdentifierSchemeEnum_ORCID:  "ORCID",
	IdentifierSchemeEnum_URL:    "URL",
	IdentifierSchemeEnum_UUID:   "UUID",
}

func (e IdentifierSchemeEnum) String() string {
	return _IdentifierSchemeEnumValueToName[e]
}

func (e IdentifierSchemeEnum) MarshalJSON() ([]byte, error) {
	name, ok := _IdentifierSchemeEnumValueToName[e]
	if !ok {
		return nil, fmt.Errorf("invalid IdentifierSchemeEnum: %d", e)
	}
	return json.Marshal(name)
}

func (e *IdentifierSchemeEnum) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("IdentifierSchemeEnum should be a string, got %s", data)
	}
	v, ok := _IdentifierSchemeEnumNameToValue[name]
	if !ok {
		return fmt.Errorf("invalid IdentifierSchemeEnum %q", name)
	}
	*e = v
	return nil
}

// ParseIdentifierScheme resolves a vocabulary token.
func ParseIdentifierScheme(token string) (IdentifierSchemeEnum, error) {
	v, ok := _IdentifierSchemeEnumNameToValue[token]
	if !ok {
		return 0, &ValidationError{Field: "scheme", Reason: fmt.Sprintf("unknown identifier scheme token %q", token)}
	}
	return v, nil
}

// AgentRoleEnum is the role an agent plays in relation to the dataset.
type AgentRoleEnum int

const (
	AgentRoleEnum_creator AgentRoleEnum = iota + 1
	AgentRoleEnum_contributor
	AgentRoleEnum_editor
	AgentRoleEnum_publisher
	AgentRoleEnum_curator
	AgentRoleEnum_reviewer
	AgentRoleEnum_contact_person
)

var _AgentRoleEnumNameToValue = map[string]AgentRoleEnum{
	"creator":        AgentRoleEnum_creator,
	"contributor":    AgentRoleEnum_contributor,
	"editor":         AgentRoleEnum_editor,
	"publisher":      AgentRoleEnum_publisher,
	"curator":        AgentRoleEnum_curator,
	"reviewer":       AgentRoleEnum_reviewer,
	"contact_person": AgentRoleEnum_contact_person,
}

var _AgentRoleEnumValueToName = map[AgentRoleEnum]string{
	AgentRoleEnum_creator:        "creator",
	AgentRoleEnum_contributor:    "contributor",
	AgentRoleEnum_editor:         "editor",
	AgentRoleEnum_publisher:      "publisher",
	AgentRoleEnum_curator:        "curator",
	AgentRoleEnum_reviewer:       "reviewer",
	AgentRoleEnum_contact_person: "contact_person",
}

func (e AgentRoleEnum) String() string {
	return _AgentRoleEnumValueToName[e]
}

func (e AgentRoleEnum) MarshalJSON() ([]byte, error) {
	name, ok := _AgentRoleEnumValueToName[e]
	if !ok {
		return nil, fmt.Errorf("invalid AgentRoleEnum: %d", e)
	}
	return json.Marshal(name)
}

func (e *AgentRoleEnum) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("AgentRoleEnum should be a string, got %s", data)
	}
	v, ok := _AgentRoleEnumNameToValue[name]
	if !ok {
		return fmt.Errorf("invalid AgentRoleEnum %q", name)
	}
	*e = v
	return nil
}

// ParseAgentRole resolves a vocabulary token.
func ParseAgentRole(token string) (AgentRoleEnum, error) {
	v, ok := _AgentRoleEnumNameToValue[token]
	if !ok {
		return 0, &ValidationError{Field: "role", Reason: fmt.Sprintf("unknown agent role token %q", token)}
	}
	return v, nil
}

// AgentTypeEnum tells persons and organizations apart.
type AgentTypeEnum int

const (
	AgentTypeEnum_person AgentTypeEnum = iota + 1
	AgentTypeEnum_organization
)

var _AgentTypeEnumNameToValue = map[string]AgentTypeEnum{
	"person":       AgentTypeEnum_person,
	"organization": AgentTypeEnum_organization,
}

var _AgentTypeEnumValueToName = map[AgentTypeEnum]string{
	AgentTypeEnum_person:       "person",
	AgentTypeEnum_organization: "organization",
}

func (e AgentTypeEnum) String() string {
	return _AgentTypeEnumValueToName[e]
}

func (e AgentTypeEnum) MarshalJSON() ([]byte, error) {
	name, ok := _AgentTypeEnumValueToName[e]
	if !ok {
		return nil, fmt.Errorf("invalid AgentTypeEnum: %d", e)
	}
	return json.Marshal(name)
}

func (e *AgentTypeEnum) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("AgentTypeEnum should be a string, got %s", data)
	}
	v, ok := _AgentTypeEnumNameToValue[name]
	if !ok {
		return fmt.Errorf("invalid AgentTypeEnum %q", name)
	}
	*e = v
	return nil
}

// ParseAgentType resolves a vocabulary token.
func ParseAgentType(token string) (AgentTypeEnum, error) {
	v, ok := _AgentTypeEnumNameToValue[token]
	if !ok {
		return 0, &ValidationError{Field: "agent_type", Reason: fmt.Sprintf("unknown agent type token %q", token)}
	}
	return v, nil
}

// DistributionFormatEnum is the media type of a distribution.
type DistributionFormatEnum int

const (
	DistributionFormatEnum_CSV DistributionFormatEnum = iota + 1
	DistributionFormatEnum_JSON
	DistributionFormatEnum_XML
	DistributionFormatEnum_PDF
	DistributionFormatEnum_ZIP
	DistributionFormatEnum_HTML
	DistributionFormatEnum_PlainText
)

var _DistributionFormatEnumNameToValue = map[string]DistributionFormatEnum{
	"text/csv":         DistributionFormatEnum_CSV,
	"application/json": DistributionFormatEnum_JSON,
	"application/xml":  DistributionFormatEnum_XML,
	"application/pdf":  DistributionFormatEnum_PDF,
	"application/zip":  DistributionFormatEnum_ZIP,
	"text/html":        DistributionFormatEnum_HTML,
	"text/plain":       DistributionFormatEnum_PlainText,
}

var _DistributionFormatEnumValueToName = map[DistributionFormatEnum]string{
	DistributionFormatEnum_CSV:       "text/csv",
	DistributionFormatEnum_JSON:      "application/json",
	DistributionFormatEnum_XML:       "application/xml",
	DistributionFormatEnum_PDF:       "application/pdf",
	DistributionFormatEnum_ZIP:       "application/zip",
	DistributionFormatEnum_HTML:      "text/html",
	DistributionFormatEnum_PlainText: "text/plain",
}

func (e DistributionFormatEnum) String() string {
	return _DistributionFormatEnumValueToName[e]
}

func (e DistributionFormatEnum) MarshalJSON() ([]byte, error) {
	name, ok := _DistributionFormatEnumValueToName[e]
	if !ok {
		return nil, fmt.Errorf("invalid DistributionFormatEnum: %d", e)
	}
	return json.Marshal(name)
}

func (e *DistributionFormatEnum) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("DistributionFormatEnum should be a string, got %s", data)
	}
	v, ok := _DistributionFormatEnumNameToValue[name]
	if !ok {
		return fmt.Errorf("invalid DistributionFormatEnum %q", name)
	}
	*e = v
	return nil
}

// ParseDistributionFormat resolves a vocabulary token.
func ParseDistributionFormat(token string) (DistributionFormatEnum, error) {
	v, ok := _DistributionFormatEnumNameToValue[token]
	if !ok {
		return 0, &ValidationError{Field: "format", Reason: fmt.Sprintf("unknown distribution format token %q", token)}
	}
	return v, nil
}

// LocationTypeEnum classifies geographical locations.
type LocationTypeEnum int

const (
	LocationTypeEnum_place LocationTypeEnum = iota + 1
	LocationTypeEnum_region
	LocationTypeEnum_country
	LocationTypeEnum_coordinates
)

var _LocationTypeEnumNameToValue = map[string]LocationTypeEnum{
	"place":       LocationTypeEnum_place,
	"region":      LocationTypeEnum_region,
	"country":     LocationTypeEnum_country,
	"coordinates": LocationTypeEnum_coordinates,
}

var _LocationTypeEnumValueToName = map[LocationTypeEnum]string{
	LocationTypeEnum_place:       "place",
	LocationTypeEnum_region:      "region",
	LocationTypeEnum_country:     "country",
	LocationTypeEnum_coordinates: "coordinates",
}

func (e LocationTypeEnum) String() string {
	return _LocationTypeEnumValueToName[e]
}

func (e LocationTypeEnum) MarshalJSON() ([]byte, error) {
	name, ok := _LocationTypeEnumValueToName[e]
	if !ok {
		return nil, fmt.Errorf("invalid LocationTypeEnum: %d", e)
	}
	return json.Marshal(name)
}

func (e *LocationTypeEnum) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("LocationTypeEnum should be a string, got %s", data)
	}
	v, ok := _LocationTypeEnumNameToValue[name]
	if !ok {
		return fmt.Errorf("invalid LocationTypeEnum %q", name)
	}
	*e = v
	return nil
}

// ParseLocationType resolves a vocabulary token.
func ParseLocationType(token string) (LocationTypeEnum, error) {
	v, ok := _LocationTypeEnumNameToValue[token]
	if !ok {
		return 0, &ValidationError{Field: "location_type", Reason: fmt.Sprintf("unknown location type token %q", token)}
	}
	return v, nil
}

// TimeReferenceTypeEnum classifies time references.
type TimeReferenceTypeEnum int

const (
	TimeReferenceTypeEnum_created TimeReferenceTypeEnum = iota + 1
	TimeReferenceTypeEnum_updated
	TimeReferenceTypeEnum_issued
	TimeReferenceTypeEnum_available
	TimeReferenceTypeEnum_submitted
	TimeReferenceTypeEnum_accepted
	TimeReferenceTypeEnum_collected
)

var _TimeReferenceTypeEnumNameToValue = map[string]TimeReferenceTypeEnum{
	"created":   TimeReferenceTypeEnum_created,
	"updated":   TimeReferenceTypeEnum_updated,
	"issued":    TimeReferenceTypeEnum_issued,
	"available": TimeReferenceTypeEnum_available,
	"submitted": TimeReferenceTypeEnum_submitted,
	"accepted":  TimeReferenceTypeEnum_accepted,
	"collected": TimeReferenceTypeEnum_collected,
}

var _TimeReferenceTypeEnumValueToName = map[TimeReferenceTypeEnum]string{
	TimeReferenceTypeEnum_created:   "created",
	TimeReferenceTypeEnum_updated:   "updated",
	TimeReferenceTypeEnum_issued:    "issued",
	TimeReferenceTypeEnum_available: "available",
	TimeReferenceTypeEnum_submitted: "submitted",
	TimeReferenceTypeEnum_accepted:  "accepted",
	TimeReferenceTypeEnum_collected: "collected",
}

func (e TimeReferenceTypeEnum) String() string {
	return _TimeReferenceTypeEnumValueToName[e]
}

func (e TimeReferenceTypeEnum) MarshalJSON() ([]byte, error) {
	name, ok := _TimeReferenceTypeEnumValueToName[e]
	if !ok {
		return nil, fmt.Errorf("invalid TimeReferenceTypeEnum: %d", e)
	}
	return json.Marshal(name)
}

func (e *TimeReferenceTypeEnum) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("TimeReferenceTypeEnum should be a string, got %s", data)
	}
	v, ok := _TimeReferenceTypeEnumNameToValue[name]
	if !ok {
		return fmt.Errorf("invalid TimeReferenceTypeEnum %q", name)
	}
	*e = v
	return nil
}

// ParseTimeReferenceType resolves a vocabulary token.
func ParseTimeReferenceType(token string) (TimeReferenceTypeEnum, error) {
	v, ok := _TimeReferenceTypeEnumNameToValue[token]
	if !ok {
		return 0, &ValidationError{Field: "time_type", Reason: fmt.Sprintf("unknown time reference type token %q", token)}
	}
	return v, nil
}
