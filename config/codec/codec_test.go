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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// FormatCodecTestSuite covers the file format codecs.
type FormatCodecTestSuite struct {
	suite.Suite
}

func TestFormatCodecTestSuite(t *testing.T) {
	suite.Run(t, new(FormatCodecTestSuite))
}

func (s *FormatCodecTestSuite) TestJSON_DecodeKeepsNumbers() {
	var v map[string]any
	err := JSONCodec{}.Decode([]byte(`{"name": "Yo!", "num": 9007199254740993, "nested": {"id": "a"}}`), &v)
	s.Require().NoError(err)
	s.Equal("Yo!", v["name"])
	s.Equal(json.Number("9007199254740993"), v["num"])
	s.Equal(map[string]any{"id": "a"}, v["nested"])
}

func (s *FormatCodecTestSuite) TestJSON_Encode() {
	b, err := JSONCodec{}.Encode(map[string]any{"title": "x"})
	s.Require().NoError(err)
	s.Equal("{\n  \"title\": \"x\"\n}\n", string(b))

	_, err = JSONCodec{}.Encode(make(chan int))
	s.Error(err)
}

func (s *FormatCodecTestSuite) TestJSON_DecodeError() {
	var v map[string]any
	s.Error(JSONCodec{}.Decode([]byte(`{"title":`), &v))
}

func (s *FormatCodecTestSuite) TestYAML_RoundTrip() {
	var v map[string]any
	err := YAMLCodec{}.Decode([]byte("title:\n  id: Yo!\n  name: 1\nfoo: bar\n"), &v)
	s.Require().NoError(err)
	s.Equal("bar", v["foo"])

	title, ok := v["title"].(map[string]any)
	s.Require().True(ok)
	s.Equal("Yo!", title["id"])
	s.EqualValues(1, title["name"])

	b, err := YAMLCodec{}.Encode(map[string]any{"foo": "bar"})
	s.Require().NoError(err)
	s.Contains(string(b), "foo: bar")
}

func (s *FormatCodecTestSuite) TestTOML_DatetimeDecodesToTime() {
	var v map[string]any
	err := TOMLCodec{}.Decode([]byte("createdAt = 2024-03-01T10:00:00Z\nnum = 3\n"), &v)
	s.Require().NoError(err)

	created, ok := v["createdAt"].(time.Time)
	s.Require().True(ok)
	s.Equal(2024, created.Year())
	s.EqualValues(3, v["num"])
}

func (s *FormatCodecTestSuite) TestTOML_DecodeError() {
	var v map[string]any
	s.Error(TOMLCodec{}.Decode([]byte("= broken"), &v))
}

// EnvVarCodecTestSuite covers KEY=VALUE decoding.
type EnvVarCodecTestSuite struct {
	suite.Suite
	codec EnvVarCodec
}

func (s *EnvVarCodecTestSuite) SetupTest() {
	s.codec = EnvVarCodec{}
}

func TestEnvVarCodecTestSuite(t *testing.T) {
	suite.Run(t, new(EnvVarCodecTestSuite))
}

func (s *EnvVarCodecTestSuite) TestDecode_Flat() {
	var v map[string]any
	err := s.codec.Decode([]byte("MAX_DEPTH=5\nSCHEMA_FILE = ./schema.graphql \n"), &v)
	s.Require().NoError(err)
	s.Equal("5", v["maxdepth"])
	s.Equal("./schema.graphql", v["schemafile"])
}

func (s *EnvVarCodecTestSuite) TestDecode_Nested() {
	var v map[string]any
	err := s.codec.Decode([]byte("LOG__LEVEL=debug\nCUSTOM_MESSAGES__EMAIL=Bad email\n"), &v)
	s.Require().NoError(err)
	s.Equal(map[string]any{"level": "debug"}, v["log"])
	s.Equal(map[string]any{"email": "Bad email"}, v["custommessages"])
}

func (s *EnvVarCodecTestSuite) TestDecode_KeepUnderscoresBelow() {
	c := EnvVarCodec{KeepUnderscoresBelow: []string{"custommessages"}}

	var v map[string]any
	err := c.Decode([]byte("CUSTOM_MESSAGES__FIRST_NAME=Name please\nMAX_DEPTH=3\nLOG__LEVEL_NAME=x\n"), &v)
	s.Require().NoError(err)
	s.Equal(map[string]any{"first_name": "Name please"}, v["custommessages"])
	s.Equal("3", v["maxdepth"])
	s.Equal(map[string]any{"levelname": "x"}, v["log"])
}

func (s *EnvVarCodecTestSuite) TestDecode_SkipsNoise() {
	var v map[string]any
	err := s.codec.Decode([]byte("# comment\n\nNOEQUALS\n=value\n__=x\nA=b=c\n"), &v)
	s.Require().NoError(err)
	s.Equal(map[string]any{"a": "b=c"}, v)
}

func (s *EnvVarCodecTestSuite) TestDecode_ScalarReplacedByMap() {
	var v map[string]any
	err := s.codec.Decode([]byte("LOG=on\nLOG__LEVEL=warn\n"), &v)
	s.Require().NoError(err)
	s.Equal(map[string]any{"level": "warn"}, v["log"])
}

func (s *EnvVarCodecTestSuite) TestDecode_WrongTarget() {
	var v map[string]string
	s.Error(s.codec.Decode([]byte("A=b"), &v))
}

func (s *EnvVarCodecTestSuite) TestEncode_Unsupported() {
	_, err := s.codec.Encode(map[string]any{})
	s.ErrorIs(err, ErrEncodeUnsupported)
}

// CasterTestSuite covers spf13/cast conversions.
type CasterTestSuite struct {
	suite.Suite
}

func TestCasterTestSuite(t *testing.T) {
	suite.Run(t, new(CasterTestSuite))
}

func (s *CasterTestSuite) TestCast() {
	tests := []struct {
		castType CastType
		in       any
		want     any
	}{
		{CastTypeString, 42, "42"},
		{CastTypeInt, "42", 42},
		{CastTypeFloat64, "2.5", 2.5},
		{CastTypeBool, "true", true},
		{CastTypeDuration, "1m", time.Minute},
		{CastTypeTime, "2024-03-01T10:00:00Z", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := NewCaster(tt.castType).Cast(tt.in)
		s.Require().NoError(err, tt.castType)
		s.Equal(tt.want, got, tt.castType)
	}
}

func (s *CasterTestSuite) TestCast_Errors() {
	_, err := NewCaster(CastTypeInt).Cast("forty-two")
	s.Error(err)

	_, err = NewCaster(CastType("complex")).Cast("1")
	s.Error(err)
}

func (s *CasterTestSuite) TestDecode() {
	dec, err := GetDecoder(TypeCasterTime)
	s.Require().NoError(err)

	var v any
	s.Require().NoError(dec.Decode([]byte("2024-03-01"), &v))
	_, ok := v.(time.Time)
	s.True(ok)

	var wrong string
	s.Error(dec.Decode([]byte("2024-03-01"), &wrong))
}

// RegistryTestSuite covers registration and format detection.
type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) TestBuiltinsRegistered() {
	for _, t := range []Type{TypeJSON, TypeYAML, TypeTOML, TypeEnvVar} {
		_, err := GetDecoder(t)
		s.NoError(err, t)
		_, err = GetEncoder(t)
		s.NoError(err, t)
	}
	s.Contains(Decoders(), TypeCasterBool)
}

func (s *RegistryTestSuite) TestUnknown() {
	_, err := GetDecoder("xml")
	s.Error(err)
	_, err = GetEncoder("xml")
	s.Error(err)
	_, err = GetEncoder(TypeCasterInt)
	s.Error(err, "casters only decode")
}

func (s *RegistryTestSuite) TestTypeFromPath() {
	tests := map[string]Type{
		"record.json":       TypeJSON,
		"dir/record.YAML":   TypeYAML,
		"record.yml":        TypeYAML,
		"settings.toml":     TypeTOML,
		"/etc/validate.env": TypeEnvVar,
	}
	for path, want := range tests {
		got, err := TypeFromPath(path)
		s.Require().NoError(err, path)
		s.Equal(want, got, path)
	}

	_, err := TypeFromPath("schema.graphql")
	s.Error(err)
}

func (s *RegistryTestSuite) TestDecodeMap() {
	m, err := DecodeMap(TypeJSON, []byte("null"))
	s.Require().NoError(err)
	s.NotNil(m)

	m, err = DecodeMap(TypeJSON, []byte(`{"a": true}`))
	s.Require().NoError(err)
	s.Equal(true, m["a"])

	_, err = DecodeMap("xml", nil)
	s.Error(err)
}
