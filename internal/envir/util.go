// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

import (
	"os"
	"strconv"
)

func IsNixboxDebugEnabled() bool {
	enabled, _ := strconv.ParseBool(os.Getenv(NixboxDebug))
	return enabled
}

func IsExecTimerEnabled() bool {
	enabled, _ := strconv.ParseBool(os.Getenv(NixboxPrintExecTime))
	return enabled
}

func IsCI() bool {
	ci, err := strconv.ParseBool(os.Getenv("CI"))
	return ci && err == nil
}
