// Copyright 2025 The Rivaas Authors
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

package problem

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	typedvalidation "github.com/Workpop/typed-validation"
)

// ContentType is the media type of a problem document.
const ContentType = "application/problem+json; charset=utf-8"

// StatusCoder lets an error declare its HTTP status.
type StatusCoder interface {
	error
	HTTPStatus() int
}

// Detailer lets an error expose structured details, such as field errors.
type Detailer interface {
	error
	Details() any
}

// Coder lets an error expose a machine-readable code.
type Coder interface {
	error
	Code() string
}

// faultCodes maps validator faults to problem codes. Faults are reported as
// 400 Bad Request: the record uses keys or shapes the schema cannot check.
var faultCodes = []struct {
	err  error
	code string
}{
	{typedvalidation.ErrNoValidator, "no_validator"},
	{typedvalidation.ErrUnknownType, "unknown_type"},
	{typedvalidation.ErrMaxDepth, "max_depth"},
	{typedvalidation.ErrKeyRequired, "key_required"},
}

// Detail is an RFC 9457 problem detail. Extensions are marshaled inline.
type Detail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"-"`
}

// MarshalJSON merges extensions into the object. Extensions cannot replace
// the standard members.
func (p Detail) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Extensions)+5)
	for k, v := range p.Extensions {
		m[k] = v
	}
	m["type"] = p.Type
	m["title"] = p.Title
	m["status"] = p.Status
	if p.Detail != "" {
		m["detail"] = p.Detail
	} else {
		delete(m, "detail")
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	} else {
		delete(m, "instance")
	}

	return json.Marshal(m)
}

// Formatter renders validation results as problem details.
type Formatter struct {
	// BaseURL is prepended to problem codes to build the type URI.
	BaseURL string

	// ErrorIDGenerator generates the error_id extension. Defaults to a random UUID.
	ErrorIDGenerator func() string

	// DisableErrorID omits the error_id extension.
	DisableErrorID bool
}

// New returns a Formatter using baseURL for problem types.
func New(baseURL string) *Formatter {
	return &Formatter{BaseURL: baseURL}
}

// Format renders err, typically returned by Validate or ValidateOne, as a
// problem detail. instance identifies the checked record, such as a file
// name or request path.
//
// A [*typedvalidation.Error] becomes a 422 problem with an "errors" extension
// listing the field errors; faults become 400 problems; anything else is a
// 500 problem of type about:blank.
//
// Example:
//
//	p := problem.New("https://example.com/problems").Format("/signup", err)
//	w.Header().Set("Content-Type", problem.ContentType)
//	w.WriteHeader(p.Status)
//	_ = json.NewEncoder(w).Encode(p)
func (f *Formatter) Format(instance string, err error) Detail {
	status, code := classify(err)

	p := Detail{
		Type:       f.typeURI(code),
		Title:      http.StatusText(status),
		Status:     status,
		Detail:     err.Error(),
		Instance:   instance,
		Extensions: make(map[string]any),
	}

	if !f.DisableErrorID {
		if f.ErrorIDGenerator != nil {
			p.Extensions["error_id"] = f.ErrorIDGenerator()
		} else {
			p.Extensions["error_id"] = uuid.NewString()
		}
	}

	var detailed Detailer
	if errors.As(err, &detailed) {
		p.Extensions["errors"] = detailed.Details()
	}
	if code != "" {
		p.Extensions["code"] = code
	}

	return p
}

func classify(err error) (status int, code string) {
	status = http.StatusInternalServerError

	var typed StatusCoder
	if errors.As(err, &typed) {
		status = typed.HTTPStatus()
	}

	var coded Coder
	if errors.As(err, &coded) {
		return status, coded.Code()
	}

	for _, fc := range faultCodes {
		if errors.Is(err, fc.err) {
			return http.StatusBadRequest, fc.code
		}
	}

	return status, ""
}

func (f *Formatter) typeURI(code string) string {
	switch {
	case code == "":
		return "about:blank"
	case f.BaseURL != "":
		return f.BaseURL + "/" + code
	default:
		return code
	}
}
