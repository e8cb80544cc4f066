// File path: internal/synth/generic.go
package synth

import "strings"

// genericStrategy is the fallback for vendors outside the known set. It
// reuses the IOS-style command text and restricts verification to the
// universally available commands.
type genericStrategy struct {
	ciscoStrategy
}

func (genericStrategy) Name() string { return "generic" }

func (genericStrategy) Verify(ctx VerifyContext) string {
	var b strings.Builder
	b.WriteString("show running-config\n")
	if ctx.Interfaces {
		b.WriteString("show ip interface brief\n")
	}
	return b.String()
}
