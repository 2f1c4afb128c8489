// SPDX-License-Identifier: EPL-2.0

// Command audstim lists, inspects and renders auditory stimuli.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
