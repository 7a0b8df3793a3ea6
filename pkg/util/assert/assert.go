// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package assert

import (
	"math"
	"reflect"
	"testing"
)

// Equal fails the test if actual is not equal to expected.  Integers of
// differing types are compared by value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}
	//
	t.Errorf("expected: %v, actual: %v", expected, actual)
	report(t, msg)
}

// Lines fails the test if the given lines of output differ from those
// expected, reporting the first line which differs.
func Lines(t *testing.T, expected []string, actual []string) {
	t.Helper()
	//
	for i := 0; i < min(len(expected), len(actual)); i++ {
		if expected[i] != actual[i] {
			t.Fatalf("line %d differs\nexpected: %q\nactual:   %q", i+1, expected[i], actual[i])
		}
	}
	//
	if len(expected) != len(actual) {
		t.Fatalf("expected %d lines, actual %d lines: %q", len(expected), len(actual), actual)
	}
}

// True fails the test if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		t.Errorf("condition is false")
		report(t, msg)
	}
}

// False fails the test if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		t.Errorf("condition is true")
		report(t, msg)
	}
}

func report(t *testing.T, msg []any) {
	t.Helper()
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}

// intEqual returns whether expected and actual are both integers with the same
// value.
func intEqual(expected, actual any) bool {
	a, aOk := asInt64(expected)
	b, bOk := asInt64(actual)
	//
	return aOk && bOk && a == b
}

// asInt64 tries to convert x to an int64, failing if x is not an integer or
// does not fit.
func asInt64(x any) (int64, bool) {
	switch x := x.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	}
	//
	return 0, false
}
