package rdf

import "context"

// hashNDegreeQuads computes the N-degree hash of id: a fingerprint derived
// by recursively exploring blank nodes connected to id and, at each step,
// picking the lexicographically smallest of the exploration paths that
// visiting its neighbors in every possible order would produce. This is
// the only part of the algorithm with worst-case exponential cost; the
// chosen-path pruning below bounds it in the common case.
func (r *run) hashNDegreeQuads(issuer *IdentifierIssuer, id string) (string, *IdentifierIssuer, error) {
	hashToRelated, err := r.createHashToRelated(issuer, id)
	if err != nil {
		return "", nil, err
	}

	var dataToHash string
	for _, hash := range sortedKeys(hashToRelated) {
		labels := hashToRelated[hash]
		dataToHash += hash

		var chosenPath string
		var chosenIssuer *IdentifierIssuer

		perms := newPermutator(labels)
		for perms.hasNext() {
			if err := context.Cause(r.ctx); err != nil {
				return "", nil, err
			}
			permutation := perms.next()
			issuerCopy := issuer.Clone()
			path := ""
			var recursionList []string
			skip := false

			for _, related := range permutation {
				if r.canonicalIssuer.Has(related) {
					path += r.canonicalIssuer.Issue(related)
				} else {
					if !issuerCopy.Has(related) {
						recursionList = append(recursionList, related)
					}
					path += issuerCopy.Issue(related)
				}
				if chosenPath != "" && len(path) >= len(chosenPath) && path > chosenPath {
					skip = true
					break
				}
			}

			if skip {
				continue
			}

			for _, related := range recursionList {
				subHash, subIssuer, err := r.hashNDegreeQuads(issuerCopy, related)
				if err != nil {
					return "", nil, err
				}
				path += "<" + subHash + ">"
				issuerCopy = subIssuer
				if chosenPath != "" && len(path) >= len(chosenPath) && path > chosenPath {
					skip = true
					break
				}
			}

			if skip {
				continue
			}

			if chosenPath == "" || path < chosenPath {
				chosenPath = path
				chosenIssuer = issuerCopy
			}
		}

		if chosenIssuer == nil {
			return "", nil, &InternalError{Reason: "no permutation produced a chosen issuer for a non-empty related-hash group"}
		}

		dataToHash += chosenPath
		issuer = chosenIssuer
	}

	return sha256Hex([]byte(dataToHash)), issuer, nil
}

// createHashToRelated groups id's non-predicate blank-node neighbors by
// their hashRelatedBlankNode hash.
func (r *run) createHashToRelated(issuer *IdentifierIssuer, id string) (map[string][]string, error) {
	hashToRelated := make(map[string][]string)
	for _, q := range r.blankNodeInfo[id].quads {
		for _, nc := range []struct {
			term     Term
			position string
		}{
			{q.S, "s"},
			{q.O, "o"},
			{q.G, "g"},
		} {
			bn, ok := nc.term.(BlankNode)
			if !ok || bn.ID == id {
				continue
			}
			hash, err := r.hashRelatedBlankNode(bn.ID, q, issuer, nc.position)
			if err != nil {
				return nil, err
			}
			hashToRelated[hash] = append(hashToRelated[hash], bn.ID)
		}
	}
	return hashToRelated, nil
}
