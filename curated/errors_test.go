// This file is part of Accsim.
//
// Accsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Accsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Accsim.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/test"
)

const testPattern = "test: %v"
const innerPattern = "inner: value %d"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("cpu: division by zero")
	f := curated.Errorf("cpu: %v", e)
	test.ExpectEquality(t, f.Error(), "cpu: division by zero")

	// duplication over more than one level of wrapping
	g := curated.Errorf("hardware: %v", curated.Errorf("hardware: %v", f))
	test.ExpectEquality(t, g.Error(), "hardware: cpu: division by zero")

	// parts that are the same but not adjacent are kept
	h := curated.Errorf("a: b: %v", curated.Errorf("a: c"))
	test.ExpectEquality(t, h.Error(), "a: b: a: c")

	// a part must match entirely to be removed
	i := curated.Errorf("mem: %v", curated.Errorf("memory: error"))
	test.ExpectEquality(t, i.Error(), "mem: memory: error")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(innerPattern, 10)
	test.ExpectEquality(t, e.Error(), "inner: value 10")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, innerPattern))
	test.ExpectFailure(t, curated.Is(e, testPattern))

	f := curated.Errorf(testPattern, e)
	test.ExpectSuccess(t, curated.Is(f, testPattern))
	test.ExpectFailure(t, curated.Is(f, innerPattern))
	test.ExpectSuccess(t, curated.Has(f, innerPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	// plain errors are never curated
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testPattern))
	test.ExpectFailure(t, curated.Has(p, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	sentinal := errors.New("sentinal")
	e := curated.Errorf(testPattern, sentinal)
	test.ExpectSuccess(t, errors.Is(e, sentinal))
	test.ExpectEquality(t, errors.Unwrap(e), sentinal)
	test.ExpectEquality(t, errors.Unwrap(curated.Errorf(innerPattern, 1)), nil)
}
