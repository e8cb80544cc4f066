// File path: internal/synth/cisco.go
package synth

import (
	"fmt"
	"strings"

	"github.com/nicodishanthj/mopgen/internal/model"
)

// ciscoStrategy emits Cisco IOS command text.
type ciscoStrategy struct{}

func (ciscoStrategy) Name() string { return "cisco" }

func (ciscoStrategy) Connect(ip string) string {
	return fmt.Sprintf("ssh admin@%s\nPassword: ******", ip)
}

func (ciscoStrategy) ConnectRollback() string { return "Disconnect from device" }

func (ciscoStrategy) Privileged() string { return "enable\nPassword: ******" }

func (ciscoStrategy) PrivilegedRollback() string { return "Exit privileged mode" }

func (ciscoStrategy) ConfigMode() string { return "configure terminal" }

func (ciscoStrategy) ConfigModeRollback() string { return "Exit configuration mode" }

func (ciscoStrategy) Interfaces(ifaces []model.Interface) string {
	if len(ifaces) == 0 {
		return "No interfaces to configure"
	}
	var b strings.Builder
	for _, intf := range ifaces {
		fmt.Fprintf(&b, "interface %s\n", intf.Name)
		fmt.Fprintf(&b, " ip address %s %s\n", intf.IP, intf.Subnet)
		b.WriteString(" no shutdown\n")
		b.WriteString("!\n")
	}
	return b.String()
}

func (ciscoStrategy) InterfacesRollback(ifaces []model.Interface) string {
	if len(ifaces) == 0 {
		return "No interfaces to rollback"
	}
	var b strings.Builder
	for _, intf := range ifaces {
		fmt.Fprintf(&b, "interface %s\n", intf.Name)
		b.WriteString(" shutdown\n")
		b.WriteString(" no ip address\n")
		b.WriteString("!\n")
	}
	return b.String()
}

func (ciscoStrategy) Routing(protocols []string) string {
	if len(protocols) == 0 {
		return "No routing protocols to configure"
	}
	var b strings.Builder
	if hasProtocol(protocols, "ospf") {
		b.WriteString("router ospf 1\n")
		b.WriteString(" network 0.0.0.0 255.255.255.255 area 0\n")
		b.WriteString("!\n")
	}
	if hasProtocol(protocols, "bgp") {
		b.WriteString("router bgp 65000\n")
		b.WriteString(" bgp router-id 1.1.1.1\n")
		b.WriteString("!\n")
	}
	return b.String()
}

func (ciscoStrategy) RoutingRollback(protocols []string) string {
	if len(protocols) == 0 {
		return "No routing protocols to rollback"
	}
	var b strings.Builder
	if hasProtocol(protocols, "ospf") {
		b.WriteString("no router ospf 1\n")
	}
	if hasProtocol(protocols, "bgp") {
		b.WriteString("no router bgp 65000\n")
	}
	return b.String()
}

func (ciscoStrategy) VLANs(vlans []model.VLAN) string {
	if len(vlans) == 0 {
		return "No VLANs to configure"
	}
	var b strings.Builder
	for _, vlan := range vlans {
		fmt.Fprintf(&b, "vlan %d\n", vlan.ID)
		fmt.Fprintf(&b, " name %s\n", vlan.Name)
		b.WriteString("!\n")
	}
	return b.String()
}

func (ciscoStrategy) VLANsRollback(vlans []model.VLAN) string {
	if len(vlans) == 0 {
		return "No VLANs to rollback"
	}
	var b strings.Builder
	for _, vlan := range vlans {
		fmt.Fprintf(&b, "no vlan %d\n", vlan.ID)
	}
	return b.String()
}

func (ciscoStrategy) Save() string { return "write memory" }

func (ciscoStrategy) Verify(ctx VerifyContext) string {
	var b strings.Builder
	b.WriteString("show running-config\n")
	if ctx.Interfaces {
		b.WriteString("show ip interface brief\n")
	}
	if ctx.OSPF {
		b.WriteString("show ip ospf neighbor\n")
	}
	if ctx.BGP {
		b.WriteString("show ip bgp summary\n")
	}
	if ctx.VLANs {
		b.WriteString("show vlan brief\n")
	}
	return b.String()
}
