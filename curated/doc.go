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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern,
// placeholder values and returns an error. The pattern is remembered and can
// be tested for with the Is() function:
//
//	const AccessError = "memory: address %d outside of memory (size %d)"
//
//	e := curated.Errorf(AccessError, 120, 100)
//
//	if curated.Is(e, AccessError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the chain of wrapped curated errors.
//
//	f := curated.Errorf("cpu: %v", e)
//
//	curated.Is(f, AccessError)  // false
//	curated.Has(f, AccessError) // true
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. Chains are thought of as parts separated by the sub-string
// ": ". So wrapping "cpu: division by zero" in "cpu: %v" will print as
// "cpu: division by zero" and not "cpu: cpu: division by zero".
//
// Every error in the emulation is fatal to a run. There is no recovery or
// retry, so the patterns exist only to let callers (and tests) tell errors
// apart.
package curated
