package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of a layout pass.
var ProgressLogger = log.New(os.Stdout, "layoutng.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like missing
// style entries, unparsable grid templates or font loading errors.
var WarningLogger = log.New(os.Stdout, "layoutng.warning: ", log.Lmsgprefix)
