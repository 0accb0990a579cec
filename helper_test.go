// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain_test

import (
	"code.hybscloud.com/chain"
)

// step returns a callback that appends name to *log and yields cmd.
// Used by ordering tests to observe the invocation sequence; the log
// is only written under the chain lock, so plain slice append is safe.
func step(log *[]string, name string, cmd chain.Command) chain.Callback {
	return func() chain.Command {
		*log = append(*log, name)
		return cmd
	}
}
