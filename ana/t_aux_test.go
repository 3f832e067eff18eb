// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
