// File path: internal/synth/strategy.go
package synth

import (
	"strings"

	"github.com/nicodishanthj/mopgen/internal/model"
)

// VerifyContext captures which conditional configuration steps were included
// in a procedure, so the verification command set matches what was actually
// configured.
type VerifyContext struct {
	Interfaces bool
	OSPF       bool
	BGP        bool
	VLANs      bool
}

// Strategy generates vendor-specific command text for each operation kind.
// Every operation supplies its rollback text through a dedicated method;
// rollback is never derived from the forward command. Implementations must
// return non-empty text for every operation.
type Strategy interface {
	Name() string

	Connect(ip string) string
	ConnectRollback() string

	Privileged() string
	PrivilegedRollback() string

	ConfigMode() string
	ConfigModeRollback() string

	Interfaces(ifaces []model.Interface) string
	InterfacesRollback(ifaces []model.Interface) string

	Routing(protocols []string) string
	RoutingRollback(protocols []string) string

	VLANs(vlans []model.VLAN) string
	VLANsRollback(vlans []model.VLAN) string

	Save() string

	Verify(ctx VerifyContext) string
}

var registry = map[string]Strategy{
	"cisco":   ciscoStrategy{},
	"juniper": juniperStrategy{},
}

// Lookup selects the strategy for a vendor name, matching case-insensitively.
// Unknown or empty vendors resolve to the generic strategy; lookup never
// fails. New vendors are added by registering a strategy, not by editing
// synthesis logic.
func Lookup(vendor string) Strategy {
	if s, ok := registry[strings.ToLower(strings.TrimSpace(vendor))]; ok {
		return s
	}
	return genericStrategy{}
}

func hasProtocol(protocols []string, name string) bool {
	for _, p := range protocols {
		if p == name {
			return true
		}
	}
	return false
}
