// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonld_test

import (
	"testing"

	. "github.com/ldcore/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompact_SimpleCompaction(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")

	doc := map[string]interface{}{
		"http://schema.org/name": "Manu",
	}
	context := map[string]interface{}{
		"name": "http://schema.org/name",
	}

	compacted, err := proc.Compact(doc, context, opts)
	require.NoError(t, err)

	assert.Equal(t, "Manu", compacted["name"])
}

func TestExpand_DropsUnmappedKeyAndInvokesCallback(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")

	var dropped []string
	opts.OnKeyDropped = func(key string) error {
		dropped = append(dropped, key)
		return nil
	}

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"name": "http://schema.org/name",
		},
		"name": "A",
		"foo":  "B",
	}

	expanded, err := proc.Expand(doc, opts)
	require.NoError(t, err)
	require.Len(t, expanded, 1)

	node := expanded[0].(map[string]interface{})
	_, hasFoo := node["foo"]
	assert.False(t, hasFoo)

	values := node["http://schema.org/name"].([]interface{})
	require.Len(t, values, 1)
	assert.Equal(t, "A", values[0].(map[string]interface{})["@value"])

	assert.Equal(t, []string{"foo"}, dropped)
}

func TestExpand_KeyDroppedCallbackErrorAbortsExpansion(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")
	opts.OnKeyDropped = func(key string) error {
		return NewError(InvalidContextEntry, "unexpected key: "+key)
	}

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"name": "http://schema.org/name",
		},
		"foo": "B",
	}

	_, err := proc.Expand(doc, opts)
	assert.Error(t, err)
}

func TestExpand_RelativeBase(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("http://example.org/a/b")

	doc := map[string]interface{}{
		"@id":   "c",
		"@type": "T",
	}

	expanded, err := proc.Expand(doc, opts)
	require.NoError(t, err)
	require.Len(t, expanded, 1)

	node := expanded[0].(map[string]interface{})
	assert.Equal(t, "http://example.org/a/c", node["@id"])
}

func TestExpandCompact_ListOfLists(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"p": map[string]interface{}{
				"@id":        "http://ex/p",
				"@container": "@list",
			},
		},
		"p": []interface{}{
			[]interface{}{1, 2},
			[]interface{}{3},
		},
	}

	expanded, err := proc.Expand(doc, opts)
	require.NoError(t, err)
	require.Len(t, expanded, 1)

	node := expanded[0].(map[string]interface{})
	values := node["http://ex/p"].([]interface{})
	require.Len(t, values, 1)
	list := values[0].(map[string]interface{})["@list"].([]interface{})
	require.Len(t, list, 2)

	recompacted, err := proc.Compact(expanded, doc["@context"], opts)
	require.NoError(t, err)
	p := recompacted["p"].([]interface{})
	assert.Len(t, p, 2)
}

func TestContext_ProtectedTermRedefinition(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")

	ctx := []interface{}{
		map[string]interface{}{
			"@protected": true,
			"x":          "http://ex/x",
		},
		map[string]interface{}{
			"x": "http://ex/y",
		},
	}
	doc := map[string]interface{}{
		"@context": ctx,
		"x":        "val",
	}

	_, err := proc.Expand(doc, opts)
	require.Error(t, err)

	var procErr *ProcessingError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, ProtectedTermRedefinition, procErr.Code)

	opts.OverrideProtected = true
	_, err = proc.Expand(doc, opts)
	assert.NoError(t, err)
}

func TestFilterNode_RequireAll(t *testing.T) {
	node := map[string]interface{}{
		"http://ex/a": "1",
	}
	frame := map[string]interface{}{
		"http://ex/a": []interface{}{},
		"http://ex/b": []interface{}{},
	}

	// requireAll = true: node is missing http://ex/b, must not match (AND semantics).
	matched, err := FilterNode(node, frame, true)
	require.NoError(t, err)
	assert.False(t, matched)

	// requireAll = false: node matches on http://ex/a alone (OR semantics).
	matched, err = FilterNode(node, frame, false)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestFrame_EmbedOnceIsDefault(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")

	context := map[string]interface{}{
		"ex":          "http://example.org/vocab#",
		"ex:contains": map[string]interface{}{"@type": "@id"},
	}
	doc := map[string]interface{}{
		"@context": context,
		"@graph": []interface{}{
			map[string]interface{}{
				"@id":         "http://example.org/test#library",
				"@type":       "ex:Library",
				"ex:contains": "http://example.org/test#book",
			},
			map[string]interface{}{
				"@id":      "http://example.org/test#book",
				"@type":    "ex:Book",
				"ex:title": "Book One",
			},
		},
	}
	frame := map[string]interface{}{
		"@context": context,
		"@type":    "ex:Library",
	}

	framed, err := proc.Frame(doc, frame, opts)
	require.NoError(t, err)

	graph := framed["@graph"].([]interface{})
	require.Len(t, graph, 1)
	lib := graph[0].(map[string]interface{})
	contains := lib["ex:contains"].(map[string]interface{})
	// @once embeds the referenced node in full on its first (only) appearance.
	assert.Equal(t, "Book One", contains["ex:title"])
}

func TestFrame_PruneBlankNodeIdentifiers(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")
	opts.PruneBlankNodeIdentifiers = true

	context := map[string]interface{}{
		"ex": "http://example.org/vocab#",
	}
	doc := map[string]interface{}{
		"@context": context,
		"@type":    "ex:Thing",
		"ex:name":  "lonely node",
	}
	frame := map[string]interface{}{
		"@context": context,
		"@type":    "ex:Thing",
	}

	framed, err := proc.Frame(doc, frame, opts)
	require.NoError(t, err)

	graph := framed["@graph"].([]interface{})
	require.Len(t, graph, 1)
	node := graph[0].(map[string]interface{})
	_, hasID := node["@id"]
	assert.False(t, hasID, "single-use blank node identifier should be pruned")
}

func TestToFromRDF_Roundtrip(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")
	opts.Format = "application/nquads"

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"ex": "http://example.org/vocab#",
		},
		"@id":     "http://example.org/test#library",
		"ex:name": "City Library",
	}

	quads, err := proc.ToRDF(doc, opts)
	require.NoError(t, err)

	back, err := proc.FromRDF(quads, opts)
	require.NoError(t, err)
	nodes := back.([]interface{})
	require.NotEmpty(t, nodes)
}

func TestToFromRDF_DirectionI18nDatatype(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")
	opts.Format = "application/nquads"
	opts.RdfDirection = "i18n-datatype"

	doc := map[string]interface{}{
		"@id": "http://example.org/test#greeting",
		"http://example.org/vocab#text": map[string]interface{}{
			"@value":     "hello",
			"@language":  "en",
			"@direction": "ltr",
		},
	}

	quads, err := proc.ToRDF(doc, opts)
	require.NoError(t, err)

	back, err := proc.FromRDF(quads, opts)
	require.NoError(t, err)
	nodes := back.([]interface{})
	require.Len(t, nodes, 1)

	node := nodes[0].(map[string]interface{})
	values := node["http://example.org/vocab#text"].([]interface{})
	require.Len(t, values, 1)
	value := values[0].(map[string]interface{})
	assert.Equal(t, "hello", value["@value"])
	assert.Equal(t, "en", value["@language"])
	assert.Equal(t, "ltr", value["@direction"])
}

func TestNormalize_URDNA2015Determinism(t *testing.T) {
	proc := NewProcessor()
	opts := NewJsonLdOptions("")
	opts.Algorithm = AlgorithmURDNA2015
	opts.InputFormat = "application/nquads"
	opts.Format = "application/nquads"

	doc := "_:b0 <http://ex/p> _:b1 .\n_:b1 <http://ex/p> _:b0 .\n"
	canonical1, err := proc.Normalize(doc, opts)
	require.NoError(t, err)

	// Swap the blank node labels; canonicalization must still produce the
	// same output since it only depends on the isomorphism class.
	swapped := "_:x1 <http://ex/p> _:x0 .\n_:x0 <http://ex/p> _:x1 .\n"
	canonical2, err := proc.Normalize(swapped, opts)
	require.NoError(t, err)

	assert.Equal(t, canonical1, canonical2)
	assert.Contains(t, canonical1.(string), "_:c14n0")
}
