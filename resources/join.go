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

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	applicationDir = "accsim"
	resourcesEnv   = "ACCSIM_RESOURCES"
)

// the base path for all resources
func resourcePath() (string, error) {
	if p, ok := os.LookupEnv(resourcesEnv); ok && p != "" {
		return p, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return filepath.Join(cnf, applicationDir), nil
}

// JoinPath prepends the supplied path with the base path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := resourcePath()
	if err != nil {
		return "", err
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}
