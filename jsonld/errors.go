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

import (
	"fmt"
)

// ErrorCode is a JSON-LD error kind, spelled as the hyphenated identifiers
// used throughout the JSON-LD 1.1 API and Framing specifications.
type ErrorCode string

// ProcessingError is the tagged error value every engine in this package
// returns. Details carries free-form context: the offending key, IRI, or
// (for I/O failures surfaced from the document loader) a wrapped error.
type ProcessingError struct {
	Code    ErrorCode
	Details interface{}
}

const (
	LoadingDocumentFailed      ErrorCode = "loading-document-failed"
	LoadingRemoteContextFailed ErrorCode = "loading-remote-context-failed"
	MultipleContextLinkHeaders ErrorCode = "multiple-context-link-headers"

	InvalidContextEntry         ErrorCode = "invalid-context-entry"
	InvalidContextNullification ErrorCode = "invalid-context-nullification"
	InvalidLocalContext         ErrorCode = "invalid-local-context"
	InvalidRemoteContext        ErrorCode = "invalid-remote-context"
	InvalidImportValue          ErrorCode = "invalid-import-value"
	InvalidContextMember        ErrorCode = "invalid-context-member"
	ContextOverflow             ErrorCode = "context-overflow"
	RecursiveContextInclusion   ErrorCode = "recursive-context-inclusion"
	InvalidBaseIRI              ErrorCode = "invalid-base-iri"
	InvalidVocabMapping         ErrorCode = "invalid-vocab-mapping"
	InvalidDefaultLanguage      ErrorCode = "invalid-default-language"
	KeywordRedefinition         ErrorCode = "keyword-redefinition"
	ProtectedTermRedefinition   ErrorCode = "protected-term-redefinition"
	InvalidTermDefinition       ErrorCode = "invalid-term-definition"
	InvalidReverseProperty      ErrorCode = "invalid-reverse-property"
	InvalidIRIMapping           ErrorCode = "invalid-iri-mapping"
	CyclicIRIMapping            ErrorCode = "cyclic-iri-mapping"
	InvalidKeywordAlias         ErrorCode = "invalid-keyword-alias"
	InvalidTypeMapping          ErrorCode = "invalid-type-mapping"
	InvalidLanguageMapping      ErrorCode = "invalid-language-mapping"
	InvalidContainerMapping     ErrorCode = "invalid-container-mapping"

	CollidingKeywords           ErrorCode = "colliding-keywords"
	InvalidIndexValue           ErrorCode = "invalid-index-value"
	ConflictingIndexes          ErrorCode = "conflicting-indexes"
	InvalidIDValue              ErrorCode = "invalid-id-value"
	InvalidTypeValue            ErrorCode = "invalid-type-value"
	InvalidValueObject          ErrorCode = "invalid-value-object"
	InvalidValueObjectValue     ErrorCode = "invalid-value-object-value"
	InvalidLanguageTaggedString ErrorCode = "invalid-language-tagged-string"
	InvalidLanguageTaggedValue  ErrorCode = "invalid-language-tagged-value"
	InvalidTypedValue           ErrorCode = "invalid-typed-value"
	InvalidSetOrListObject      ErrorCode = "invalid-set-or-list-object"
	InvalidLanguageMapValue     ErrorCode = "invalid-language-map-value"
	CompactionToListOfLists     ErrorCode = "compaction-to-list-of-lists"
	InvalidReversePropertyMap   ErrorCode = "invalid-reverse-property-map"
	InvalidReverseValue         ErrorCode = "invalid-reverse-value"
	InvalidReversePropertyValue ErrorCode = "invalid-reverse-property-value"
	InvalidVersionValue         ErrorCode = "invalid-version-value"
	ProcessingModeConflict      ErrorCode = "processing-mode-conflict"
	InvalidPrefixValue          ErrorCode = "invalid-prefix-value"
	InvalidNestValue            ErrorCode = "invalid-nest-value"
	ListOfLists                 ErrorCode = "list-of-lists"

	InvalidFrame ErrorCode = "invalid-frame"

	// non-spec kinds used internally for parsing/serialization failures.
	SyntaxError    ErrorCode = "syntax-error"
	NotImplemented ErrorCode = "not-implemented"
	UnknownFormat  ErrorCode = "unknown-format"
	InvalidInput   ErrorCode = "invalid-input"
	ParseError     ErrorCode = "parse-error"
	IOError        ErrorCode = "io-error"
	UnknownError   ErrorCode = "unknown-error"
)

func (e ProcessingError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%v: %v", e.Code, e.Details)
	}
	return fmt.Sprintf("%v", e.Code)
}

// Unwrap returns the wrapped cause when Details holds an error (e.g. a
// document-loader failure), and nil otherwise.
func (e ProcessingError) Unwrap() error {
	if cause, ok := e.Details.(error); ok {
		return cause
	}
	return nil
}

// NewError creates a new instance of ProcessingError.
func NewError(code ErrorCode, details interface{}) *ProcessingError {
	return &ProcessingError{Code: code, Details: details}
}
