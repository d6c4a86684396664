// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merr

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"
)

type ErrSuite struct {
	suite.Suite
}

func (s *ErrSuite) TestCode() {
	err := WrapErrMalformedInput("json", errors.New("unexpected end of input"))
	s.ErrorIs(err, ErrMalformedInput)
	s.Equal(Code(ErrMalformedInput), Code(err))
	s.Equal(int32(0), Code(nil))
	s.Equal(errUnexpected.errCode, Code(errors.New("plain")))

	sameCodeErr := newCodecError("new error", ErrMalformedInput.errCode)
	s.True(sameCodeErr.Is(ErrMalformedInput))
	s.False(ErrParameterInvalid.Is(ErrMalformedInput))
}

func (s *ErrSuite) TestWrap() {
	s.ErrorIs(WrapErrMalformedInput("yaml", nil), ErrMalformedInput)
	s.ErrorIs(WrapErrMalformedInput("json", errors.New("bad"), "decode record"), ErrMalformedInput)
	s.ErrorIs(WrapErrParameterInvalid("json", "xml", "unknown format"), ErrParameterInvalid)
	s.ErrorIs(WrapErrParameterInvalidMsg("serializer is %s", "nil"), ErrParameterInvalid)
	s.ErrorIs(WrapErrOperationNotSupported("comments", "yaml"), ErrOperationNotSupported)

	s.NotErrorIs(WrapErrParameterInvalid(1, 2), ErrMalformedInput)
}

func (s *ErrSuite) TestMessage() {
	err := WrapErrMalformedInput("json", errors.New("mismatched type"))
	s.Equal("malformed input[format=json][reason=mismatched type]", err.Error())
	s.Equal("malformed input", ErrMalformedInput.Error())
}

func (s *ErrSuite) TestErrorType() {
	s.True(IsInputError(ErrMalformedInput))
	s.True(IsInputError(WrapErrMalformedInput("json", nil, "decode")))
	s.False(IsInputError(ErrParameterInvalid))
	s.False(IsInputError(nil))
	s.Equal("input_error", GetErrorType(ErrMalformedInput).String())
	s.Equal(SystemError, GetErrorType(errors.New("plain")))
}

func (s *ErrSuite) TestCombineErrors() {
	errFirst := errors.New("first")
	errSecond := errors.New("second")
	errThird := errors.New("third")

	err := Combine(errFirst, nil, errSecond)
	s.True(errors.Is(err, errFirst))
	s.True(errors.Is(err, errSecond))
	s.False(errors.Is(err, errThird))
	s.Equal("first: second", err.Error())

	s.Nil(Combine(nil, nil))

	err = Combine(WrapErrParameterInvalid("json", "xml"), errFirst)
	s.ErrorIs(err, ErrParameterInvalid)
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrSuite))
}
