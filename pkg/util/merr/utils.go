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
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Code 返回给定错误对应的错误码，nil 返回 0。
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch specificErr := cause.(type) {
	case codecError:
		return specificErr.code()

	default:
		return errUnexpected.code()
	}
}

func GetErrorType(err error) ErrorType {
	if merr, ok := errors.Cause(err).(codecError); ok {
		return merr.errType
	}

	return SystemError
}

// IsInputError 判断错误是否由调用方输入引起。
func IsInputError(err error) bool {
	return err != nil && GetErrorType(err) == InputError
}

// WrapErrMalformedInput 将底层解析引擎的错误包装为 ErrMalformedInput。
// cause 的完整错误链通过 secondary error 保留，便于 %+v 排查。
func WrapErrMalformedInput(format string, cause error, msg ...string) error {
	fields := []errorField{value("format", format)}
	if cause != nil {
		fields = append(fields, value("reason", cause.Error()))
	}
	err := wrapFields(ErrMalformedInput, fields...)
	if cause != nil {
		err = errors.WithSecondaryError(err, cause)
	}
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrParameterInvalid[T any](expected, actual T, msg ...string) error {
	err := wrapFields(ErrParameterInvalid,
		value("expected", expected),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrParameterInvalidMsg(fmt string, args ...any) error {
	return errors.Wrapf(ErrParameterInvalid, fmt, args...)
}

func WrapErrOperationNotSupported(operation string, msg ...string) error {
	err := wrapFields(ErrOperationNotSupported, value("operation", operation))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func wrapFields(err codecError, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	return err
}

type errorField interface {
	String() string
}

type valueField struct {
	name  string
	value any
}

func value(name string, value any) valueField {
	return valueField{
		name,
		value,
	}
}

func (f valueField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}
