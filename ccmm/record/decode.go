package record

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Decode parses an XML document into a new Dataset.
//
// The walk is driven by an explicit allow-list of element names so the
// forward-compatibility behaviour stays auditable: unknown elements are
// skipped, missing optional elements leave defaults. Every recognized
// element is fed through the same mutators the facade uses, so a value
// violating a model invariant aborts the whole load with a ParseError
// and no dataset is returned.
func Decode(blob []byte) (*Dataset, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(blob); err != nil {
		return nil, &ParseError{Op: "document", Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Op: "document", Err: errors.New("no root element")}
	}
	if root.Tag != "dataset" {
		return nil, &ParseError{Op: "document", Err: errors.Errorf("unexpected root element %q", root.Tag)}
	}

	ds := NewDataset()
	for _, el := range root.ChildElements() {
		var err error
		switch el.Tag {
		case "title":
			err = ds.SetTitle(el.Text())
		case "publication_year":
			var year int
			year, err = cast.ToIntE(strings.TrimSpace(el.Text()))
			if err != nil {
				err = errors.Wrap(err, "publication year")
			} else {
				err = ds.SetPublicationYear(year)
			}
		case "version":
			err = ds.SetVersion(el.Text())
		case "has_description":
			err = ds.AddDescription(childText(el, "description_text"))
		case "alternate_title":
			err = ds.AddAlternateTitle(AlternateTitle{
				Title:     childText(el, "title"),
				TitleType: childText(el, "title_type"),
			})
		case "identifier":
			err = decodeIdentifier(ds, el)
		case "location":
			err = decodeLocation(ds, el)
		case "qualified_relation":
			err = decodeQualifiedRelation(ds, el)
		case "time_reference":
			err = decodeTimeReference(ds, el)
		case "subject":
			err = ds.AddSubject(Subject{
				Term:   childText(el, "subject_value"),
				Scheme: childText(el, "subject_scheme"),
			})
		case "distribution":
			err = decodeDistribution(ds, el)
		default:
			// Unknown element: skipped on purpose, the schema may grow
			// ahead of this reader.
		}
		if err != nil {
			return nil, &ParseError{Op: el.Tag, Err: err}
		}
	}

	return ds, nil
}

// DecodeString is Decode for in-memory documents.
func DecodeString(doc string) (*Dataset, error) {
	return Decode([]byte(doc))
}

func decodeIdentifier(ds *Dataset, el *etree.Element) error {
	scheme, err := ParseIdentifierScheme(childText(el, "scheme"))
	if err != nil {
		return err
	}
	return ds.AddIdentifier(Identifier{
		Value:  childText(el, "value"),
		Scheme: scheme,
		IRI:    childText(el, "iri"),
	})
}

func decodeLocation(ds *Dataset, el *etree.Element) error {
	typ, err := ParseLocationType(childText(el, "location_type"))
	if err != nil {
		return err
	}
	return ds.AddLocation(Location{
		Value: childText(el, "location_value"),
		Type:  typ,
	})
}

func decodeQualifiedRelation(ds *Dataset, el *etree.Element) error {
	role, err := ParseAgentRole(childText(el, "role"))
	if err != nil {
		return err
	}
	// agent_type is optional in the source document, person is assumed.
	agentType := AgentTypeEnum_person
	if token := childText(el, "agent_type"); token != "" {
		if agentType, err = ParseAgentType(token); err != nil {
			return err
		}
	}
	return ds.AddAgentRelationship(AgentRelationship{
		AgentName: childText(el, "agent_name"),
		Role:      role,
		AgentType: agentType,
	})
}

func decodeTimeReference(ds *Dataset, el *etree.Element) error {
	typ, err := ParseTimeReferenceType(childText(el, "time_type"))
	if err != nil {
		return err
	}
	return ds.AddTimeReference(TimeReference{
		Value: childText(el, "time_value"),
		Type:  typ,
	})
}

func decodeDistribution(ds *Dataset, el *etree.Element) error {
	var format DistributionFormatEnum
	if token := childText(el, "format"); token != "" {
		var err error
		if format, err = ParseDistributionFormat(token); err != nil {
			return err
		}
	}
	return ds.AddDistribution(Distribution{
		AccessURL: childText(el, "access_url"),
		Format:    format,
	})
}

// childText returns the text of the named child element, or the empty
// string when the child is absent.
func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return child.Text()
}
