package report

import (
	"fmt"
	"strings"

	"github.com/samatild/azvmprofilefetcher/internal/imds"
	"github.com/samatild/azvmprofilefetcher/internal/output"
	"github.com/samatild/azvmprofilefetcher/internal/types"
)

func storageLines(doc imds.Document) []string {
	osDisk := types.ParseOSDisk(doc.Map("compute.storageProfile.osDisk"))
	lines := []string{output.FieldLine("OS Disk", formatOSDisk(osDisk))}

	for i, disk := range types.ParseDataDisks(doc.Slice("compute.storageProfile.dataDisks")) {
		lines = append(lines, output.FieldLine(fmt.Sprintf("Data Disk %d", i+1), formatDataDisk(disk)))
	}
	return lines
}

func formatOSDisk(disk types.OSDisk) string {
	return fmt.Sprintf("%s (%s GB, Caching: %s, Write Accelerator: %s, Encryption: %s)",
		output.FormatValue(disk.Name),
		output.FormatValue(disk.SizeGB),
		output.FormatValue(disk.Caching),
		output.FormatValue(disk.WriteAccelerator),
		output.FormatValue(disk.Encryption),
	)
}

func formatDataDisk(disk types.DataDisk) string {
	return fmt.Sprintf("%s (%s GB, Caching: %s, Write Accelerator: %s, Ultra Disk: %s, LUN: %s, Encryption: %s)",
		output.FormatValue(disk.Name),
		output.FormatValue(disk.SizeGB),
		output.FormatValue(disk.Caching),
		output.FormatValue(disk.WriteAccelerator),
		output.FormatValue(disk.UltraDisk),
		output.FormatValue(disk.LUN),
		output.FormatValue(disk.Encryption),
	)
}

func networkLines(doc imds.Document) []string {
	var lines []string
	for i, iface := range types.ParseInterfaces(doc.Slice("network.interface")) {
		lines = append(lines, output.FieldLine(fmt.Sprintf("Interface %d MAC", i+1), iface.MAC))
		for _, addr := range iface.IPv4 {
			lines = append(lines, output.FieldLine("  IPv4", formatAddress(addr)))
		}
		for _, subnet := range iface.Subnets {
			lines = append(lines, output.FieldLine("  Subnet",
				output.FormatValue(subnet.Address)+"/"+output.FormatValue(subnet.Prefix)))
		}
		for _, addr := range iface.IPv6 {
			lines = append(lines, output.FieldLine("  IPv6", addr.Private))
		}
	}
	return lines
}

// formatAddress keeps the public address only when one is assigned.
func formatAddress(addr types.IPAddress) string {
	private := output.FormatValue(addr.Private)
	public := output.FormatValue(addr.Public)
	if public == imds.Sentinel || strings.TrimSpace(public) == "" {
		return private
	}
	return fmt.Sprintf("%s (Public: %s)", private, public)
}
