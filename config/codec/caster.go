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

package codec

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// CastType names the Go type a [Caster] converts to.
type CastType string

// Cast types and the decoder types they are registered under.
const (
	CastTypeString   CastType = "string"
	CastTypeInt      CastType = "int"
	CastTypeFloat64  CastType = "float64"
	CastTypeBool     CastType = "bool"
	CastTypeTime     CastType = "time"
	CastTypeDuration CastType = "duration"

	TypeCasterString   Type = "caster-string"
	TypeCasterInt      Type = "caster-int"
	TypeCasterFloat64  Type = "caster-float64"
	TypeCasterBool     Type = "caster-bool"
	TypeCasterTime     Type = "caster-time"
	TypeCasterDuration Type = "caster-duration"
)

func init() {
	RegisterDecoder(TypeCasterString, NewCaster(CastTypeString))
	RegisterDecoder(TypeCasterInt, NewCaster(CastTypeInt))
	RegisterDecoder(TypeCasterFloat64, NewCaster(CastTypeFloat64))
	RegisterDecoder(TypeCasterBool, NewCaster(CastTypeBool))
	RegisterDecoder(TypeCasterTime, NewCaster(CastTypeTime))
	RegisterDecoder(TypeCasterDuration, NewCaster(CastTypeDuration))
}

// Caster converts loosely typed values, such as strings read from a file or
// the environment, to one Go type.
type Caster struct {
	castType CastType
}

// NewCaster returns a Caster converting to castType.
func NewCaster(castType CastType) *Caster {
	return &Caster{castType: castType}
}

// Cast converts v.
func (c *Caster) Cast(v any) (any, error) {
	switch c.castType {
	case CastTypeString:
		return cast.ToStringE(v)
	case CastTypeInt:
		return cast.ToIntE(v)
	case CastTypeFloat64:
		return cast.ToFloat64E(v)
	case CastTypeBool:
		return cast.ToBoolE(v)
	case CastTypeTime:
		return cast.ToTimeInDefaultLocationE(v, time.UTC)
	case CastTypeDuration:
		return cast.ToDurationE(v)
	}

	return nil, fmt.Errorf("unknown cast type %q", c.castType)
}

// Decode casts the text in data and stores the result in the *any pointed to by v.
func (c *Caster) Decode(data []byte, v any) error {
	ptr, ok := v.(*any)
	if !ok {
		return fmt.Errorf("Caster.Decode: expected *any, got %T", v)
	}

	out, err := c.Cast(string(data))
	if err != nil {
		return err
	}
	*ptr = out

	return nil
}
