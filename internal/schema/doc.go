// Package schema parses model schema documents.
//
// A model document is XML with a single root element carrying the model name
// and one Property child per field declaration:
//
//	<Model name="Person">
//	  <Property name="id" type="int" inEntity="true" inDTO="true" />
//	  <Property name="address" type="Address" inEntity="true" inDTO="true" />
//	  <Property name="secret" type="string" inEntity="true" />
//	</Model>
//
// Parsing is best-effort. A document that cannot be parsed, or whose root has
// no name, yields a Skip instead of an error. A Property without a name or a
// type is dropped and reported in the document diagnostics; the rest of the
// document still parses.
package schema
