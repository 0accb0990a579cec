// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/chain"
)

// TestPropertyDrainPrefix proves that for any arbitrarily generated
// command sequence, one Execute invokes exactly the registration-order
// prefix through the first Trigger and leaves everything behind it
// queued.
func TestPropertyDrainPrefix(t *testing.T) {
	propertyPrefix := func(triggers []bool) bool {
		c := chain.New()
		var got []int
		for i, trig := range triggers {
			cmd := chain.Continue
			if trig {
				cmd = chain.Trigger
			}
			c.Add(func() chain.Command {
				got = append(got, i)
				return cmd
			})
		}

		c.Execute()

		// Expected: indexes 0..k where k is the first trigger,
		// or the whole sequence when no callback triggers.
		want := len(triggers)
		for i, trig := range triggers {
			if trig {
				want = i + 1
				break
			}
		}
		if len(got) != want {
			return false
		}
		for i, v := range got {
			if v != i {
				return false
			}
		}
		return c.Len() == len(triggers)-want
	}

	if err := quick.Check(propertyPrefix, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyResumeDrainsAll proves that repeated Execute calls after
// Trigger stops always resume where the previous run stopped, so the
// full registration order is eventually invoked exactly once.
func TestPropertyResumeDrainsAll(t *testing.T) {
	propertyResume := func(triggers []bool) bool {
		c := chain.New()
		var got []int
		for i, trig := range triggers {
			cmd := chain.Continue
			if trig {
				cmd = chain.Trigger
			}
			c.Add(func() chain.Command {
				got = append(got, i)
				return cmd
			})
		}

		// Each Execute consumes at least one callback while any are
		// queued, so len(triggers)+1 rounds always suffice.
		for range len(triggers) + 1 {
			c.Execute()
		}

		if c.Len() != 0 {
			return false
		}
		if len(got) != len(triggers) {
			return false
		}
		for i, v := range got {
			if v != i {
				return false
			}
		}
		return int(c.Invoked()) == len(triggers)
	}

	if err := quick.Check(propertyResume, nil); err != nil {
		t.Error(err)
	}
}
