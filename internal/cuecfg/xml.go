// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cuecfg

import (
	"encoding/xml"
)

func marshalXML(v any) ([]byte, error) {
	return xml.MarshalIndent(v, "", Indent)
}

func unmarshalXML(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
