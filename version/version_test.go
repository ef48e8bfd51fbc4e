// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"runtime/debug"
	"testing"

	"github.com/gophernes/gophernes/test"
)

func buildInfo(settings ...debug.BuildSetting) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: settings}, true
	}
}

func TestFromBuildInfo(t *testing.T) {
	v, r := fromBuildInfo("", func() (*debug.BuildInfo, bool) { return nil, false })
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	v, r = fromBuildInfo("", buildInfo(
		debug.BuildSetting{Key: "vcs", Value: "git"},
		debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
	))
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123")

	v, r = fromBuildInfo("v0.1.0", buildInfo(
		debug.BuildSetting{Key: "vcs", Value: "git"},
		debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
		debug.BuildSetting{Key: "vcs.modified", Value: "true"},
	))
	test.ExpectEquality(t, v, "v0.1.0")
	test.ExpectEquality(t, r, "abc123+dirty")
}
