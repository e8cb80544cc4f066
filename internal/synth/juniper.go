// File path: internal/synth/juniper.go
package synth

import (
	"fmt"
	"strings"

	"github.com/nicodishanthj/mopgen/internal/model"
)

// juniperStrategy emits Junos set-style command text.
type juniperStrategy struct{}

func (juniperStrategy) Name() string { return "juniper" }

func (juniperStrategy) Connect(ip string) string {
	return fmt.Sprintf("ssh admin@%s\nPassword: ******", ip)
}

func (juniperStrategy) ConnectRollback() string { return "Disconnect from device" }

func (juniperStrategy) Privileged() string { return "cli\nedit" }

func (juniperStrategy) PrivilegedRollback() string { return "Exit privileged mode" }

func (juniperStrategy) ConfigMode() string { return "edit" }

func (juniperStrategy) ConfigModeRollback() string { return "Exit configuration mode" }

func (juniperStrategy) Interfaces(ifaces []model.Interface) string {
	if len(ifaces) == 0 {
		return "No interfaces to configure"
	}
	var b strings.Builder
	for _, intf := range ifaces {
		fmt.Fprintf(&b, "set interfaces %s unit 0 family inet address %s/%d\n", intf.Name, intf.IP, prefixLength(intf.Subnet))
	}
	return b.String()
}

func (juniperStrategy) InterfacesRollback(ifaces []model.Interface) string {
	if len(ifaces) == 0 {
		return "No interfaces to rollback"
	}
	var b strings.Builder
	for _, intf := range ifaces {
		fmt.Fprintf(&b, "delete interfaces %s unit 0 family inet\n", intf.Name)
	}
	return b.String()
}

func (juniperStrategy) Routing(protocols []string) string {
	if len(protocols) == 0 {
		return "No routing protocols to configure"
	}
	var b strings.Builder
	if hasProtocol(protocols, "ospf") {
		b.WriteString("set protocols ospf area 0.0.0.0 interface all\n")
	}
	if hasProtocol(protocols, "bgp") {
		b.WriteString("set protocols bgp local-as 65000\n")
		b.WriteString("set routing-options router-id 1.1.1.1\n")
	}
	return b.String()
}

func (juniperStrategy) RoutingRollback(protocols []string) string {
	if len(protocols) == 0 {
		return "No routing protocols to rollback"
	}
	var b strings.Builder
	if hasProtocol(protocols, "ospf") {
		b.WriteString("delete protocols ospf\n")
	}
	if hasProtocol(protocols, "bgp") {
		b.WriteString("delete protocols bgp\n")
		b.WriteString("delete routing-options router-id\n")
	}
	return b.String()
}

func (juniperStrategy) VLANs(vlans []model.VLAN) string {
	if len(vlans) == 0 {
		return "No VLANs to configure"
	}
	var b strings.Builder
	for _, vlan := range vlans {
		fmt.Fprintf(&b, "set vlans %s vlan-id %d\n", vlan.Name, vlan.ID)
	}
	return b.String()
}

func (juniperStrategy) VLANsRollback(vlans []model.VLAN) string {
	if len(vlans) == 0 {
		return "No VLANs to rollback"
	}
	var b strings.Builder
	for _, vlan := range vlans {
		fmt.Fprintf(&b, "delete vlans %s\n", vlan.Name)
	}
	return b.String()
}

func (juniperStrategy) Save() string { return "commit and-quit" }

func (juniperStrategy) Verify(ctx VerifyContext) string {
	var b strings.Builder
	b.WriteString("show configuration\n")
	if ctx.Interfaces {
		b.WriteString("show interfaces terse\n")
	}
	if ctx.OSPF {
		b.WriteString("show ospf neighbor\n")
	}
	if ctx.BGP {
		b.WriteString("show bgp summary\n")
	}
	if ctx.VLANs {
		b.WriteString("show vlans\n")
	}
	return b.String()
}
