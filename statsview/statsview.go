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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/accsim/accsim/logger"
)

// Address of the statsview server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// URL returns the full address of the statistics page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, url)
}

// Launch a new goroutine running the statsview. The returned function stops
// the server.
func Launch(output io.Writer) (stop func()) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go func() {
		mgr.Start()
		logger.Log(logger.Allow, "statsview", "server stopped")
	}()

	fmt.Fprintf(output, "stats server available at %s\n", URL())

	return func() {
		mgr.Stop()
	}
}
