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

package jsonld

type Embed string

const (
	JsonLd_1_0       = "json-ld-1.0"              //nolint:stylecheck
	JsonLd_1_1       = "json-ld-1.1"              //nolint:stylecheck
	JsonLd_1_1_Frame = "json-ld-1.1-expand-frame" //nolint:stylecheck

	EmbedOnce   = "@once"
	EmbedAlways = "@always"
	EmbedNever  = "@never"
)

// JsonLdOptions type as specified in the JSON-LD-API specification:
// http://www.w3.org/TR/json-ld-api/#the-jsonldoptions-type
type JsonLdOptions struct { //nolint:stylecheck

	// Base options: http://www.w3.org/TR/json-ld-api/#idl-def-JsonLdOptions

	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-base
	Base string
	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-compactArrays
	CompactArrays bool
	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-expandContext
	ExpandContext interface{}
	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-processingMode
	ProcessingMode string
	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-documentLoader
	DocumentLoader DocumentLoader
	// ContextResolver caches resolved remote @context documents across
	// calls. When nil, a process-wide resolver keyed
	// on DocumentLoader is used instead (see defaultContextResolver).
	ContextResolver *ContextResolver

	// Frame options: http://json-ld.org/spec/latest/json-ld-framing/

	Embed        Embed
	Explicit     bool
	RequireAll   bool
	FrameDefault bool
	OmitDefault  bool
	OmitGraph    bool

	// PruneBlankNodeIdentifiers controls whether blank node identifiers that
	// are not referenced elsewhere in the frame result are dropped. It
	// defaults to true in JSON-LD 1.1 processing mode.
	PruneBlankNodeIdentifiers bool

	// OnKeyDropped, if set, is invoked once per expansion for every document
	// key that expands to neither a keyword nor an absolute IRI, before the
	// key is discarded. An error returned from the callback aborts expansion
	// with that error.
	OnKeyDropped func(key string) error

	// OverrideProtected allows a protected term definition to be redefined
	// instead of failing with protected-term-redefinition. It defaults to
	// false and the library never sets it itself: every context-processing
	// step of a call uses the caller's value.
	OverrideProtected bool

	// RDF conversion options: http://www.w3.org/TR/json-ld-api/#serialize-rdf-as-json-ld-algorithm

	UseRdfType            bool
	UseNativeTypes        bool
	ProduceGeneralizedRdf bool
	// RdfDirection selects how the value of a node's base direction is
	// represented in RDF: "" (not serialized), "i18n-datatype" or
	// "compound-literal".
	RdfDirection string

	// The following properties aren't in the spec

	InputFormat   string
	Format        string
	Algorithm     string
	UseNamespaces bool
	OutputForm    string
	SafeMode      bool
}

// NewJsonLdOptions creates and returns new instance of JsonLdOptions with the given base.
func NewJsonLdOptions(base string) *JsonLdOptions { //nolint:stylecheck
	return &JsonLdOptions{
		Base:                      base,
		CompactArrays:             true,
		ProcessingMode:            JsonLd_1_1,
		DocumentLoader:            NewDefaultDocumentLoader(nil),
		Embed:                     EmbedOnce,
		Explicit:                  false,
		RequireAll:                false,
		FrameDefault:              false,
		OmitDefault:               false,
		OmitGraph:                 false,
		PruneBlankNodeIdentifiers: true,
		OverrideProtected:         false,
		UseRdfType:                false,
		UseNativeTypes:            false,
		ProduceGeneralizedRdf:     false,
		InputFormat:               "",
		Format:                    "",
		Algorithm:                 AlgorithmURDNA2015,
		UseNamespaces:             false,
		OutputForm:                "",
		SafeMode:                  false,
	}
}

// Copy creates a deep copy of JsonLdOptions object.
func (opt *JsonLdOptions) Copy() *JsonLdOptions {
	return &JsonLdOptions{
		Base:                      opt.Base,
		CompactArrays:             opt.CompactArrays,
		ExpandContext:             opt.ExpandContext,
		ProcessingMode:            opt.ProcessingMode,
		DocumentLoader:            opt.DocumentLoader,
		ContextResolver:           opt.ContextResolver,
		Embed:                     opt.Embed,
		Explicit:                  opt.Explicit,
		RequireAll:                opt.RequireAll,
		FrameDefault:              opt.FrameDefault,
		OmitDefault:               opt.OmitDefault,
		OmitGraph:                 opt.OmitGraph,
		PruneBlankNodeIdentifiers: opt.PruneBlankNodeIdentifiers,
		OnKeyDropped:              opt.OnKeyDropped,
		OverrideProtected:         opt.OverrideProtected,
		UseRdfType:                opt.UseRdfType,
		UseNativeTypes:            opt.UseNativeTypes,
		ProduceGeneralizedRdf:     opt.ProduceGeneralizedRdf,
		RdfDirection:              opt.RdfDirection,
		InputFormat:               opt.InputFormat,
		Format:                    opt.Format,
		Algorithm:                 opt.Algorithm,
		UseNamespaces:             opt.UseNamespaces,
		OutputForm:                opt.OutputForm,
		SafeMode:                  opt.SafeMode,
	}
}
