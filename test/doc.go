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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and stop the test
// immediately.
//
// ExpectSuccess and ExpectFailure accept bool and error values. It is worth
// describing how they handle nil because it is not obvious. A nil value is
// considered a success, so ExpectFailure(t, nil) fails and ExpectSuccess(t,
// nil) succeeds. This is how errors usually work (nil to indicate no error) so
// we need to interpret nil this way.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
