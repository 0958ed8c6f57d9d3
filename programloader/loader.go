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

package programloader

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/hardware/cpu/instructions"
)

// Sentinal error patterns.
const (
	ParseError    = "programloader: line %d: %v"
	LoadError     = "programloader: %v"
	HashMismatch  = "programloader: unexpected hash value"
	commentMarker = "#"
)

// Loader is used to specify the program file to load.
type Loader struct {
	// filename of the program
	Filename string

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// the program after a successful load
	Program []instructions.Instruction
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	return strings.TrimSuffix(ld.Filename[strings.LastIndexAny(ld.Filename, `/\`)+1:], ".acc")
}

// Load the program from the file. The Program and Hash fields are updated.
func (ld *Loader) Load() error {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashMismatch)
	}

	program, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	ld.Hash = hash
	ld.Program = program

	return nil
}

// Parse reads a program from an io.Reader.
func Parse(r io.Reader) ([]instructions.Instruction, error) {
	var program []instructions.Instruction

	scanner := bufio.NewScanner(r)

	var lineNum int
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if i := strings.Index(line, commentMarker); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		ins, err := parseInstruction(fields)
		if err != nil {
			return nil, curated.Errorf(ParseError, lineNum, err)
		}

		program = append(program, ins)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	return program, nil
}

func parseInstruction(fields []string) (instructions.Instruction, error) {
	var ins instructions.Instruction

	if len(fields) > 2 {
		return ins, fmt.Errorf("too many fields (%d)", len(fields))
	}

	if op, err := strconv.Atoi(fields[0]); err == nil {
		ins.OpCode = instructions.OpCode(op)
	} else if defn, ok := instructions.LookupMnemonic(fields[0]); ok {
		ins.OpCode = defn.OpCode
	} else {
		return ins, fmt.Errorf("unrecognised opcode (%s)", fields[0])
	}

	if len(fields) == 2 {
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return ins, fmt.Errorf("invalid operand (%s)", fields[1])
		}
		ins.Operand = v
	}

	return ins, nil
}
