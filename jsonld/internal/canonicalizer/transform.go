//
//  Copyright 2006-2019 WebPKI.org (http://webpki.org).
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      https://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package canonicalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf16"
)

// Transform rewrites arbitrary JSON into the form required by the JSON
// Canonicalization Scheme (JCS, RFC 8785): object members sorted by UTF-16
// code unit, whitespace removed, strings re-escaped per the ES6 rules and
// numbers formatted with NumberToJSON.
func Transform(jsonData []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	var parsed interface{}
	if err := decoder.Decode(&parsed); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := serialize(&buf, parsed); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func serialize(buf *bytes.Buffer, value interface{}) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return err
		}
		formatted, err := NumberToJSON(f)
		if err != nil {
			return err
		}
		buf.WriteString(formatted)
	case string:
		serializeString(buf, v)
	case []interface{}:
		return serializeArray(buf, v)
	case map[string]interface{}:
		return serializeObject(buf, v)
	default:
		return fmt.Errorf("jsoncanonicalizer: unsupported value of type %T", v)
	}
	return nil
}

func serializeArray(buf *bytes.Buffer, arr []interface{}) error {
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := serialize(buf, elem); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// serializeObject writes members ordered by the UTF-16 code units of their
// names, as RFC 8785 section 3.2.3 requires.
func serializeObject(buf *bytes.Buffer, obj map[string]interface{}) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return less16(keys[i], keys[j])
	})

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		serializeString(buf, k)
		buf.WriteByte(':')
		if err := serialize(buf, obj[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func less16(a, b string) bool {
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}

func serializeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u`)
				buf.WriteString(fmt.Sprintf("%04x", r))
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
