package rdf

// hashFirstDegreeQuads computes the first-degree hash of the blank node
// labeled id: a fingerprint derived only from the quads that directly
// reference it, with every blank-node component relabeled to one of two
// sentinels so the hash is invariant under renaming the rest of the
// blank-node namespace.
func (r *run) hashFirstDegreeQuads(id string) (string, error) {
	info := r.blankNodeInfo[id]
	if info.hash != nil {
		return *info.hash, nil
	}

	lines := make([]string, 0, len(info.quads))
	for _, q := range info.quads {
		relabeled := Quad{
			S: modifyFirstDegreeComponent(q.S, id),
			P: q.P,
			O: modifyFirstDegreeComponent(q.O, id),
			G: modifyFirstDegreeComponent(q.G, id),
		}
		line, err := r.codec.EmitNQuad(relabeled)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	sortLines(lines)

	hash := sha256OfLines(lines)
	info.hash = &hash
	return hash, nil
}

// modifyFirstDegreeComponent relabels a blank-node term to the self
// sentinel "_:a" if it carries id, or the other sentinel "_:z" otherwise.
// Non-blank-node terms, and a nil graph term, pass through unchanged.
func modifyFirstDegreeComponent(term Term, id string) Term {
	bn, ok := term.(BlankNode)
	if !ok {
		return term
	}
	if bn.ID == id {
		return BlankNode{ID: "a"}
	}
	return BlankNode{ID: "z"}
}

// hashRelatedBlankNode computes the short hash the N-degree search uses to
// group neighbors of id by structural role: the best-available identifier
// for related, combined with position and (for subject/object) the
// predicate IRI.
func (r *run) hashRelatedBlankNode(related string, q Quad, issuer *IdentifierIssuer, position string) (string, error) {
	var label string
	switch {
	case r.canonicalIssuer.Has(related):
		label = r.canonicalIssuer.Issue(related)
	case issuer.Has(related):
		label = issuer.Issue(related)
	default:
		h, err := r.hashFirstDegreeQuads(related)
		if err != nil {
			return "", err
		}
		label = h
	}

	if position != "g" {
		input := position + "<" + q.P.Value + ">" + label
		return sha256Hex([]byte(input)), nil
	}
	return sha256Hex([]byte(position + label)), nil
}
