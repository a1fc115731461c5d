/*
Package record provides the CCMM dataset entity model and its XML codec.

A Dataset is built incrementally through mutators that enforce every
locally-checkable invariant (non-empty strings, vocabulary membership,
URI well-formedness), so an instance never holds an inconsistent field.
Whole-record checks are split between CheckMandatory, which verifies the
business-required fields, and SchemaValidator, which validates the
serialized document against the CCMM XSD schema set.

The XML layout follows the element sequence mandated by the dataset
schema, not the order in which fields were populated; insertion order is
kept only within each repeatable element group.
*/
package record
