// Package genxml reads hardware descriptor sources ("genxml" files) into a
// fully materialized Document.
//
// A source looks like:
//
//	<genxml name="BDW" gen="8">
//	  <struct name="RENDER_SURFACE_STATE" length="16">
//	    <field name="Surface Pitch" start="96" end="113" type="uint"/>
//	  </struct>
//	</genxml>
//
// Only the parts the bits generator needs are kept: the generation, the
// containers (instructions, structs and registers) and the fields declared
// anywhere inside them. Field bit positions are kept as raw attribute text
// and converted by the consumer, so a malformed position on a field nobody
// asks about is not an error.
package genxml
