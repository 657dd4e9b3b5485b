// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/inconshreveable/log15"
)

// newLogger returns a logfmt logger on w filtered at level and tagged with
// the run id.
func newLogger(w io.Writer, level, runID string) (log15.Logger, error) {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return nil, err
	}
	logger := log15.New("app", "lvmatch", "run", runID)
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(w, log15.LogfmtFormat())))

	return logger, nil
}
