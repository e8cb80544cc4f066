// File path: internal/synth/synthesizer.go
package synth

import (
	"fmt"
	"strings"

	"github.com/nicodishanthj/mopgen/internal/model"
)

// defaultConnectIP is used when the extraction payload carries no usable
// interface address.
const defaultConnectIP = "192.168.1.1"

// Synthesize builds the ordered procedure for a device from its extracted
// data. It is a pure function: identical input always produces an identical
// step sequence, and it performs no I/O. Missing fields never fail; they fall
// back to documented defaults. Step numbers are assigned contiguously over
// whichever steps were included.
func Synthesize(data model.ExtractedData) []model.ProcedureStep {
	strat := Lookup(data.Vendor)

	ip := defaultConnectIP
	if len(data.Interfaces) > 0 && strings.TrimSpace(data.Interfaces[0].IP) != "" {
		ip = data.Interfaces[0].IP
	}

	includeInterfaces := len(data.Interfaces) > 0
	includeRouting := len(data.RoutingProtocols) > 0
	includeVLANs := data.DeviceType == "switch" && len(data.VLANs) > 0

	steps := make([]model.ProcedureStep, 0, 8)
	add := func(description, command, verification, rollback string) {
		steps = append(steps, model.ProcedureStep{
			Description:  description,
			Command:      command,
			Verification: verification,
			Rollback:     rollback,
		})
	}

	add(
		"Connect to "+DeviceLabel(data),
		strat.Connect(ip),
		"Verify connection is established and prompt is available",
		strat.ConnectRollback(),
	)
	add(
		"Enter privileged mode",
		strat.Privileged(),
		"Verify prompt changes to indicate privileged mode",
		strat.PrivilegedRollback(),
	)
	add(
		"Enter configuration mode",
		strat.ConfigMode(),
		"Verify prompt changes to indicate configuration mode",
		strat.ConfigModeRollback(),
	)
	if includeInterfaces {
		add(
			"Configure interfaces",
			strat.Interfaces(data.Interfaces),
			"Verify interfaces are configured correctly",
			strat.InterfacesRollback(data.Interfaces),
		)
	}
	if includeRouting {
		add(
			"Configure routing protocols",
			strat.Routing(data.RoutingProtocols),
			"Verify routing protocols are configured correctly",
			strat.RoutingRollback(data.RoutingProtocols),
		)
	}
	if includeVLANs {
		add(
			"Configure VLANs",
			strat.VLANs(data.VLANs),
			"Verify VLANs are configured correctly",
			strat.VLANsRollback(data.VLANs),
		)
	}
	add(
		"Save configuration",
		strat.Save(),
		"Verify configuration is saved",
		"No rollback needed",
	)
	add(
		"Verify configuration",
		strat.Verify(VerifyContext{
			Interfaces: includeInterfaces,
			OSPF:       includeRouting && hasProtocol(data.RoutingProtocols, "ospf"),
			BGP:        includeRouting && hasProtocol(data.RoutingProtocols, "bgp"),
			VLANs:      includeVLANs,
		}),
		"Verify all configurations are applied correctly",
		"No rollback needed",
	)

	for i := range steps {
		steps[i].StepNumber = i + 1
		steps[i].ID = fmt.Sprintf("step%d", i+1)
	}
	return steps
}

// DeviceLabel joins the vendor, model and device type into a human-readable
// target name, defaulting the type to "device".
func DeviceLabel(data model.ExtractedData) string {
	parts := make([]string, 0, 3)
	if v := strings.TrimSpace(data.Vendor); v != "" {
		parts = append(parts, v)
	}
	if m := strings.TrimSpace(data.Model); m != "" {
		parts = append(parts, m)
	}
	deviceType := strings.TrimSpace(data.DeviceType)
	if deviceType == "" {
		deviceType = "device"
	}
	parts = append(parts, deviceType)
	return strings.Join(parts, " ")
}
