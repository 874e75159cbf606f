package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/glossa-dev/glossa/errors"
)

// Compatible reports whether a component's resolved runtime version can be
// used with this toolchain.
//
// While the project is pre-1.0 the generated glue and the runtime make no
// stability promises to each other, so the versions must match exactly.
// From 1.0 on, a matching major version is sufficient.
func Compatible(other string) (bool, error) {
	return compatible(Version, other)
}

func compatible(ours, theirs string) (bool, error) {
	ourVersion, err := semver.NewVersion(strings.TrimPrefix(ours, "v"))
	if err != nil {
		return false, errors.Wrapf(err, "invalid toolchain version %q", ours)
	}
	theirVersion, err := semver.NewVersion(strings.TrimPrefix(theirs, "v"))
	if err != nil {
		return false, errors.Wrapf(err, "invalid runtime version %q", theirs)
	}

	if ourVersion.Major() == 0 {
		return ourVersion.Equal(theirVersion), nil
	}
	return ourVersion.Major() == theirVersion.Major(), nil
}
