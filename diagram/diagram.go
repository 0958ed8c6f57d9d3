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

package diagram

import (
	"bufio"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/hardware"
)

// WriteError is returned when the diagram cannot be written.
const WriteError = "diagram: %v"

// Write the state to the io.Writer as a dot graph.
func Write(w io.Writer, state hardware.State) {
	memviz.Map(w, &state)
}

// WriteFile writes the state to the named file as a dot graph. The file is
// created or truncated.
func WriteFile(filename string, state hardware.State) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	Write(w, state)
	if err := w.Flush(); err != nil {
		return curated.Errorf(WriteError, err)
	}

	return nil
}
