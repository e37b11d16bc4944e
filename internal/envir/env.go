// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

const (
	NixboxDebug         = "NIXBOX_DEBUG"
	NixboxPrintExecTime = "NIXBOX_PRINT_EXEC_TIME"

	XDGConfigHome = "XDG_CONFIG_HOME"
)

// system
const (
	Home = "HOME"
)
