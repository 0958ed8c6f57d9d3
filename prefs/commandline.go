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

package prefs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// the command line stack allows preferences to be specified on the command
// line and to take precedence over the values stored on disk. the stack is
// needed because a program can have more than one group of preferences in
// play, each pushed and popped as required.
var commandLineStack []map[string]string

// PushCommandLineStack forwards command line preferences to the prefs system.
// The prefs string is a series of key::value pairs separated by a semicolon:
//
//	"hardware.memory.size::200; hardware.fetch.prefetch::true"
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack removes the top of the stack and returns the entries
// that were not consumed by GetCommandLinePref(), as a normalised prefs
// string. Keys are sorted.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	s := make([]string, 0, len(popped))
	for _, key := range slices.Sorted(maps.Keys(popped)) {
		s = append(s, fmt.Sprintf("%s::%s", key, popped[key]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for the key from the top of the
// command line stack. The entry is consumed.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
