package record

import (
	"strconv"

	"github.com/beevik/etree"
)

// Namespace is the target namespace of the CCMM dataset schema. It is
// declared as the default namespace on the root element so every child
// lives in it without prefixing.
const Namespace = "https://schema.ccmm.cz/dataset/1.0"

// Document renders the dataset as an XML document following the element
// sequence required by the dataset schema. Optional fields and empty
// collections produce no elements. Rendering is deterministic: equal
// datasets produce byte-identical compact documents.
func (d *Dataset) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("dataset")
	root.CreateAttr("xmlns", Namespace)

	if d.publicationYear != 0 {
		root.CreateElement("publication_year").SetText(strconv.Itoa(d.publicationYear))
	}
	if d.version != "" {
		root.CreateElement("version").SetText(d.version)
	}
	if d.title != "" {
		root.CreateElement("title").SetText(d.title)
	}
	for _, text := range d.descriptions {
		el := root.CreateElement("has_description")
		el.CreateElement("description_text").SetText(text)
	}
	for _, at := range d.alternateTitles {
		el := root.CreateElement("alternate_title")
		el.CreateElement("title").SetText(at.Title)
		if at.TitleType != "" {
			el.CreateElement("title_type").SetText(at.TitleType)
		}
	}
	for _, id := range d.identifiers {
		el := root.CreateElement("identifier")
		el.CreateElement("value").SetText(id.Value)
		el.CreateElement("scheme").SetText(id.Scheme.String())
		if id.IRI != "" {
			el.CreateElement("iri").SetText(id.IRI)
		}
	}
	for _, l := range d.locations {
		el := root.CreateElement("location")
		el.CreateElement("location_value").SetText(l.Value)
		el.CreateElement("location_type").SetText(l.Type.String())
	}
	for _, ar := range d.agentRelationships {
		el := root.CreateElement("qualified_relation")
		el.CreateElement("agent_name").SetText(ar.AgentName)
		el.CreateElement("role").SetText(ar.Role.String())
		el.CreateElement("agent_type").SetText(ar.AgentType.String())
	}
	for _, tr := range d.timeReferences {
		el := root.CreateElement("time_reference")
		el.CreateElement("time_value").SetText(tr.Value)
		el.CreateElement("time_type").SetText(tr.Type.String())
	}
	for _, s := range d.subjects {
		el := root.CreateElement("subject")
		el.CreateElement("subject_value").SetText(s.Term)
		if s.Scheme != "" {
			el.CreateElement("subject_scheme").SetText(s.Scheme)
		}
	}
	for _, dist := range d.distributions {
		el := root.CreateElement("distribution")
		el.CreateElement("access_url").SetText(dist.AccessURL)
		if dist.Format != 0 {
			el.CreateElement("format").SetText(dist.Format.String())
		}
	}

	return doc
}

// XML returns the textual rendering of the dataset. The pretty flag
// only toggles indentation, never the element tree.
func (d *Dataset) XML(pretty bool) (string, error) {
	doc := d.Document()
	if pretty {
		doc.Indent(2)
	}
	return doc.WriteToString()
}
