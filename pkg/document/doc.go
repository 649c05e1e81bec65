// Package document converts YAML translation documents to and from a flat,
// dot-separated key space.
//
// Documents are decoded into a Value, a small recursive tree of scalars,
// sequences and ordered mappings that does not depend on the YAML library.
// Key order is preserved end to end, so a document that is read, flattened,
// unflattened and written again keeps its layout.
//
// # Flattening
//
// Flatten walks the tree depth-first and joins the keys on the way to every
// scalar leaf with ".":
//
//	greeting:
//	  formal: Good day
//
// becomes the FlatMap entry "greeting.formal" => "Good day". Sequence indices
// become path segments ("items.0"). Explicit nulls are skipped, so a key with
// no value is absent from the result rather than an empty string.
//
// # Unflattening
//
// Unflatten reverses the process and only ever builds mappings. It refuses to
// overwrite: when one key is a strict prefix of another ("a" and "a.b") it
// returns ErrKeyConflict instead of dropping either value.
//
//	m := document.NewFlatMap()
//	m.Set("greeting.formal", "Good day")
//	tree, err := document.Unflatten(m)
//	data, err := document.Encode(tree)
//	// greeting:
//	//   formal: Good day
//
// # Limits
//
// Nesting is bounded by MaxDepth. Sequences survive Flatten but come back from
// Unflatten as mappings keyed by index.
package document
