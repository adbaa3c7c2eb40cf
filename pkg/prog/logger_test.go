package prog_test

import "src.elv.sh/elvcalc/pkg/logutil"

var testLogger = logutil.GetLogger("[prog_test] ")
