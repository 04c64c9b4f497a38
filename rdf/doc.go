// Package rdf implements the URDNA2015 RDF Dataset Normalization
// algorithm: deterministic canonicalization of RDF datasets containing
// blank nodes.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// Given a Dataset whose blank nodes carry arbitrary local identifiers,
// Normalize rewrites those identifiers into a canonical _:c14nN namespace
// such that any two isomorphic datasets produce byte-identical N-Quads
// output, regardless of input blank-node labeling or quad order. This
// enables digital signing, content-addressed storage, and diffing of graph
// data that contains blank nodes.
//
// Example:
//
//	out, err := rdf.Normalize(ctx, dataset, rdf.WithFormat(rdf.FormatNQuads))
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(out)
//
// Normalize consumes a read-only Dataset; building one from parsed N-Quads,
// JSON-LD, or any other source is the caller's concern. Serialization back
// to N-Quads text is delegated to an NQuadCodec: NativeCodec is used by
// default, and GoldCodec is provided for callers whose pipeline already
// depends on piprate/json-gold.
//
// The algorithm's N-degree hashing step is worst-case exponential in the
// size of the largest group of blank nodes indistinguishable by their
// immediate neighborhood; Normalize accepts a context.Context so callers
// can bound how long they are willing to wait on pathological inputs.
package rdf
